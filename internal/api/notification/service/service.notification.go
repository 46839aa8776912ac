// Package notificationsvc gửi mail nhắc deadline cho step hiện tại của các request.
package notificationsvc

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"gopkg.in/gomail.v2"

	authmodels "github.com/cuongthieu-itme/product-workflow-sub001/internal/api/auth/models"
	basesvc "github.com/cuongthieu-itme/product-workflow-sub001/internal/api/base/service"
	requestmodels "github.com/cuongthieu-itme/product-workflow-sub001/internal/api/request/models"
	requestsvc "github.com/cuongthieu-itme/product-workflow-sub001/internal/api/request/service"
	workflowmodels "github.com/cuongthieu-itme/product-workflow-sub001/internal/api/workflow/models"
	"github.com/cuongthieu-itme/product-workflow-sub001/internal/global"
	"github.com/cuongthieu-itme/product-workflow-sub001/internal/logger"
)

// MailSender gửi mail, tách interface để test không cần SMTP thật
type MailSender interface {
	Send(to, subject, body string) error
}

// smtpSender gửi mail qua SMTP bằng gomail
type smtpSender struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPSender tạo MailSender từ cấu hình SMTP đã load
func NewSMTPSender() MailSender {
	cfg := global.MongoDB_ServerConfig
	return &smtpSender{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		from:   cfg.SMTPFrom,
	}
}

func (s *smtpSender) Send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)
	return s.dialer.DialAndSend(m)
}

// ScanResult kết quả một lần quét deadline
type ScanResult struct {
	Scanned  int      `json:"scanned"`  // Số request có workflow được xét
	Notified int      `json:"notified"` // Số mail nhắc đã gửi
	Skipped  int      `json:"skipped"`  // Số request bỏ qua (chưa tới cửa sổ nhắc, không có assignee...)
	Errors   []string `json:"errors,omitempty"`
}

// DeadlineService quét các request đang chạy và gửi mail nhắc khi step hiện tại
// đã vào cửa sổ nhắc (deadline trừ notifyBeforeDeadline ngày) mà chưa quá hạn.
type DeadlineService struct {
	requests *requestsvc.RequestService
	users    *basesvc.BaseServiceMongoImpl[authmodels.User]
	sender   MailSender
}

// NewDeadlineService tạo DeadlineService
func NewDeadlineService(sender MailSender) (*DeadlineService, error) {
	requests, err := requestsvc.NewRequestService()
	if err != nil {
		return nil, err
	}
	userCol, ok := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !ok {
		return nil, fmt.Errorf("collection %s chưa được đăng ký", global.MongoDB_ColNames.Users)
	}

	return &DeadlineService{
		requests: requests,
		users:    basesvc.NewBaseServiceMongo[authmodels.User](userCol),
		sender:   sender,
	}, nil
}

// ScanAndNotify quét toàn bộ request có workflow và gửi mail nhắc.
// Gửi mail là best-effort: lỗi gửi một request không chặn các request còn lại.
func (s *DeadlineService) ScanAndNotify(ctx context.Context, now time.Time) (*ScanResult, error) {
	result := &ScanResult{}

	candidates, err := s.requests.Find(ctx, bson.M{"workflow": bson.M{"$ne": nil}}, nil)
	if err != nil {
		return nil, err
	}

	for i := range candidates {
		request := &candidates[i]
		result.Scanned++

		switch requestmodels.DeriveStatus(request.Workflow) {
		case requestmodels.InstanceStatusPending, requestmodels.InstanceStatusInProgress:
			// Chỉ request đang chạy mới cần nhắc
		default:
			result.Skipped++
			continue
		}

		if err := s.notifyRequest(ctx, request, now); err != nil {
			if err == errOutsideWindow || err == errNoRecipient {
				result.Skipped++
				continue
			}
			logger.GetErrorLogger().WithError(err).
				WithField("requestCode", request.RequestCode).
				Warn("Không gửi được mail nhắc deadline")
			result.Errors = append(result.Errors,
				fmt.Sprintf("%s: %v", request.RequestCode, err))
			continue
		}
		result.Notified++
	}

	return result, nil
}

var (
	errOutsideWindow = fmt.Errorf("chưa tới cửa sổ nhắc hoặc đã quá hạn")
	errNoRecipient   = fmt.Errorf("không tìm được email người phụ trách")
)

// notifyRequest gửi mail nhắc cho step hiện tại của một request nếu đã vào cửa sổ nhắc
func (s *DeadlineService) notifyRequest(ctx context.Context, request *requestmodels.Request, now time.Time) error {
	stepID := request.Workflow.CurrentStepID
	if stepID == "" {
		return errOutsideWindow
	}

	deadline, notifyDays, err := s.requests.StepDeadline(ctx, request, stepID)
	if err != nil {
		return err
	}

	notifyAt := workflowmodels.NotifyAt(deadline, notifyDays)
	if now.Before(notifyAt) || now.After(deadline) {
		return errOutsideWindow
	}

	assignee := requestmodels.ResolveAssignee(request)
	if assignee == requestmodels.UnassignedLabel {
		return errNoRecipient
	}
	user, err := s.users.FindOne(ctx, bson.M{"username": assignee}, nil)
	if err != nil || user.Email == "" {
		return errNoRecipient
	}

	subject := fmt.Sprintf("[%s] Sắp đến hạn step hiện tại", request.RequestCode)
	body := fmt.Sprintf(
		"Request %s (%s) có step hiện tại đến hạn lúc %s.\nVui lòng hoàn thành trước deadline.",
		request.RequestCode, request.Title,
		workflowmodels.FormatOrgTime(deadline))

	return s.sender.Send(user.Email, subject, body)
}
