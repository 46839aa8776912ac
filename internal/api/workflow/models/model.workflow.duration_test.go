package workflowmodels

import (
	"testing"
	"time"
)

func TestConvertDurationToDays(t *testing.T) {
	cases := []struct {
		name string
		d    EstimatedDuration
		want int
	}{
		{"5 giờ làm tròn lên 1 ngày", EstimatedDuration{Value: 5, Unit: DurationUnitHours}, 1},
		{"8 giờ đúng 1 ngày", EstimatedDuration{Value: 8, Unit: DurationUnitHours}, 1},
		{"9 giờ làm tròn lên 2 ngày", EstimatedDuration{Value: 9, Unit: DurationUnitHours}, 2},
		{"3 ngày giữ nguyên", EstimatedDuration{Value: 3, Unit: DurationUnitDays}, 3},
		{"2 tuần là 14 ngày", EstimatedDuration{Value: 2, Unit: DurationUnitWeeks}, 14},
		{"1 tháng cố định 30 ngày", EstimatedDuration{Value: 1, Unit: DurationUnitMonths}, 30},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ConvertDurationToDays(tc.d); got != tc.want {
				t.Errorf("ConvertDurationToDays(%+v) = %d, muốn %d", tc.d, got, tc.want)
			}
		})
	}
}

func TestComputeDeadline_GioLamTronLenNgay(t *testing.T) {
	receive := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	deadline := ComputeDeadline(receive, EstimatedDuration{Value: 5, Unit: DurationUnitHours})

	want := time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC)
	if !deadline.Equal(want) {
		t.Errorf("deadline = %v, muốn %v", deadline, want)
	}
}

func TestComputeDeadline_TheoTuan(t *testing.T) {
	receive := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	deadline := ComputeDeadline(receive, EstimatedDuration{Value: 2, Unit: DurationUnitWeeks})

	want := time.Date(2024, 3, 29, 0, 0, 0, 0, time.UTC)
	if !deadline.Equal(want) {
		t.Errorf("deadline = %v, muốn %v", deadline, want)
	}
}

func TestNotifyAt(t *testing.T) {
	deadline := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	notifyAt := NotifyAt(deadline, 2)

	want := time.Date(2024, 1, 8, 9, 0, 0, 0, time.UTC)
	if !notifyAt.Equal(want) {
		t.Errorf("notifyAt = %v, muốn %v", notifyAt, want)
	}
}
