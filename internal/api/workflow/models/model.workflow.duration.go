package workflowmodels

import (
	"time"
)

// hoursPerWorkDay số giờ làm việc một ngày, dùng khi quy đổi giờ sang ngày
const hoursPerWorkDay = 8

// ConvertDurationToDays quy đổi thời lượng ước tính sang số ngày nguyên:
//   - hours  -> ceil(hours / 8)
//   - days   -> giữ nguyên
//   - weeks  -> value * 7
//   - months -> value * 30 (không dùng lịch thật, cố định 30 ngày)
func ConvertDurationToDays(d EstimatedDuration) int {
	switch d.Unit {
	case DurationUnitHours:
		return (d.Value + hoursPerWorkDay - 1) / hoursPerWorkDay
	case DurationUnitDays:
		return d.Value
	case DurationUnitWeeks:
		return d.Value * 7
	case DurationUnitMonths:
		return d.Value * 30
	default:
		return d.Value
	}
}

// ComputeDeadline tính deadline = receiveDate + số ngày quy đổi của thời lượng
func ComputeDeadline(receiveDate time.Time, d EstimatedDuration) time.Time {
	return receiveDate.AddDate(0, 0, ConvertDurationToDays(d))
}

// NotifyAt trả về thời điểm cần gửi nhắc deadline cho một step
// (deadline trừ đi notifyBeforeDeadline ngày)
func NotifyAt(deadline time.Time, notifyBeforeDeadline int) time.Time {
	return deadline.AddDate(0, 0, -notifyBeforeDeadline)
}
