package sensor

import (
	"testing"

	"github.com/distatus/battery"
	"github.com/pkg/errors"
)

func fakeBattery(current, full float64, state battery.State) *battery.Battery {
	return &battery.Battery{Current: current, Full: full, State: state}
}

func TestRead(t *testing.T) {
	tests := []struct {
		name    string
		bats    []*battery.Battery
		err     error
		want    Status
		wantErr bool
	}{
		{
			name: "no battery present",
			bats: nil,
			want: Status{Percent: 0, Plugged: false},
		},
		{
			name: "single battery discharging",
			bats: []*battery.Battery{fakeBattery(50, 100, battery.Discharging)},
			want: Status{Percent: 50, Plugged: false},
		},
		{
			name: "single battery charging",
			bats: []*battery.Battery{fakeBattery(75, 100, battery.Charging)},
			want: Status{Percent: 75, Plugged: true},
		},
		{
			name: "full battery on AC",
			bats: []*battery.Battery{fakeBattery(100, 100, battery.Full)},
			want: Status{Percent: 100, Plugged: true},
		},
		{
			name: "empty state counts as unplugged",
			bats: []*battery.Battery{fakeBattery(1, 100, battery.Empty)},
			want: Status{Percent: 1, Plugged: false},
		},
		{
			name: "unknown state counts as unplugged",
			bats: []*battery.Battery{fakeBattery(60, 100, battery.Unknown)},
			want: Status{Percent: 60, Plugged: false},
		},
		{
			name: "multiple batteries aggregate by capacity",
			bats: []*battery.Battery{
				fakeBattery(100, 100, battery.Discharging),
				fakeBattery(0, 100, battery.Discharging),
			},
			want: Status{Percent: 50, Plugged: false},
		},
		{
			name: "design capacity fallback",
			bats: []*battery.Battery{
				func() *battery.Battery {
					b := fakeBattery(30, 0, battery.Discharging)
					b.Design = 100
					return b
				}(),
			},
			want: Status{Percent: 30, Plugged: false},
		},
		{
			name: "overcharged reading clamps to 100",
			bats: []*battery.Battery{fakeBattery(105, 100, battery.Full)},
			want: Status{Percent: 100, Plugged: true},
		},
		{
			name:    "fatal read error",
			bats:    nil,
			err:     errors.New("ioreg: no such service"),
			wantErr: true,
		},
		{
			name: "all batteries failed",
			bats: []*battery.Battery{{}},
			err: battery.Errors{
				battery.ErrPartial{State: errors.New("bad state"), Current: errors.New("bad current")},
			},
			wantErr: true,
		},
		{
			name: "one broken battery is skipped",
			bats: []*battery.Battery{
				fakeBattery(50, 100, battery.Charging),
				{},
			},
			err: battery.Errors{
				nil,
				battery.ErrPartial{Current: errors.New("bad current")},
			},
			want: Status{Percent: 50, Plugged: true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			readBatteries = func() ([]*battery.Battery, error) { return tt.bats, tt.err }
			defer func() { readBatteries = battery.GetAll }()

			got, err := Read()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Read() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if got != tt.want {
				t.Errorf("Read() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
