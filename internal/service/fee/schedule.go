package fee

import (
	"errors"
	"fmt"

	"wallet-mapper/internal/model"
	"wallet-mapper/pkg/config"
)

var ErrInvalidTiers = errors.New("invalid fee tiers")

// Tier 金额 <= UpTo 时收取 Fee, UpTo 为 0 表示无上限 (只能是最后一档)
type Tier struct {
	UpTo model.Amount
	Fee  model.Amount
}

// DefaultTiers 默认档位 (整币): <=25,000 收 1, <=250,000 收 2, <=2,500,000 收 5, 其余收 10
func DefaultTiers() []Tier {
	return []Tier{
		{UpTo: model.FromNem(25_000), Fee: model.FromNem(1)},
		{UpTo: model.FromNem(250_000), Fee: model.FromNem(2)},
		{UpTo: model.FromNem(2_500_000), Fee: model.FromNem(5)},
		{UpTo: 0, Fee: model.FromNem(10)},
	}
}

// Schedule 分档手续费表
type Schedule struct {
	tiers       []Tier
	messageUnit model.Amount
}

func NewSchedule(tiers []Tier, messageUnit model.Amount) (*Schedule, error) {
	if len(tiers) == 0 {
		return nil, fmt.Errorf("%w: empty", ErrInvalidTiers)
	}
	for i, t := range tiers {
		last := i == len(tiers)-1
		if t.UpTo == 0 && !last {
			return nil, fmt.Errorf("%w: tier %d is unbounded but not last", ErrInvalidTiers, i)
		}
		if last && t.UpTo != 0 {
			return nil, fmt.Errorf("%w: last tier must be unbounded", ErrInvalidTiers)
		}
		if i > 0 && !last && t.UpTo <= tiers[i-1].UpTo {
			return nil, fmt.Errorf("%w: tier %d is not ascending", ErrInvalidTiers, i)
		}
	}
	cp := make([]Tier, len(tiers))
	copy(cp, tiers)
	return &Schedule{tiers: cp, messageUnit: messageUnit}, nil
}

// NewScheduleFromConfig 配置中的数值以整币为单位
func NewScheduleFromConfig(cfg config.FeeConfig) (*Schedule, error) {
	if len(cfg.Tiers) == 0 {
		return NewSchedule(DefaultTiers(), model.FromNem(cfg.MessageUnit))
	}
	tiers := make([]Tier, 0, len(cfg.Tiers))
	for _, t := range cfg.Tiers {
		tiers = append(tiers, Tier{UpTo: model.FromNem(t.UpTo), Fee: model.FromNem(t.Fee)})
	}
	return NewSchedule(tiers, model.FromNem(cfg.MessageUnit))
}

// BaseFee 金额所在档位的基础手续费, 0 落在最低档
func (s *Schedule) BaseFee(amount model.Amount) model.Amount {
	for _, t := range s.tiers {
		if t.UpTo == 0 || amount <= t.UpTo {
			return t.Fee
		}
	}
	return s.tiers[len(s.tiers)-1].Fee
}

func (s *Schedule) MessageFeeUnit() model.Amount {
	return s.messageUnit
}

// MustDefaultSchedule 默认档位, 附言单位 1
func MustDefaultSchedule() *Schedule {
	s, err := NewSchedule(DefaultTiers(), model.FromNem(1))
	if err != nil {
		panic(err)
	}
	return s
}
