package model

import (
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/shopspring/decimal"
)

// Address 账户地址 (Base58Check 编码)
type Address string

func (a Address) String() string { return string(a) }

// Amount 以 micro 为单位的金额, 1 个整币 = 1,000,000 micro
type Amount uint64

const (
	MicroPerUnit  = 1_000_000
	amountDecimal = 6
)

var (
	ErrInvalidAmount = errors.New("无效的金额")
	maxAmount        = decimal.NewFromBigInt(new(big.Int).SetUint64(^uint64(0)), 0)
)

// FromNem 整币数量转 Amount
func FromNem(units uint64) Amount { return Amount(units * MicroPerUnit) }

func FromMicro(micro uint64) Amount { return Amount(micro) }

// ParseAmount 解析整币单位的十进制字符串, 最多 6 位小数
func ParseAmount(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrInvalidAmount, s)
	}
	if d.IsNegative() {
		return 0, fmt.Errorf("%w: 金额不能为负", ErrInvalidAmount)
	}
	micro := d.Shift(amountDecimal)
	if !micro.IsInteger() {
		return 0, fmt.Errorf("%w: 小数位超过 %d 位", ErrInvalidAmount, amountDecimal)
	}
	if micro.GreaterThan(maxAmount) {
		return 0, fmt.Errorf("%w: 金额溢出", ErrInvalidAmount)
	}
	return Amount(micro.BigInt().Uint64()), nil
}

func (a Amount) Micro() uint64 { return uint64(a) }

// Units 整币部分, 向下取整
func (a Amount) Units() uint64 { return uint64(a) / MicroPerUnit }

func (a Amount) Add(b Amount) Amount { return a + b }

func (a Amount) Decimal() decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(uint64(a)), -amountDecimal)
}

// String 以整币单位输出, 去掉末尾的 0
func (a Amount) String() string { return a.Decimal().String() }

// NetworkEpoch 网络创世时间, TimeInstant 从这里开始计秒
var NetworkEpoch = time.Date(2015, time.March, 29, 0, 6, 25, 0, time.UTC)

// TimeInstant 相对网络创世时间的秒数
type TimeInstant int64

const SecondsPerHour = 3600

func TimeInstantFromTime(t time.Time) TimeInstant {
	return TimeInstant(t.Sub(NetworkEpoch) / time.Second)
}

func (t TimeInstant) AddSeconds(s int64) TimeInstant { return t + TimeInstant(s) }

func (t TimeInstant) AddHours(h int) TimeInstant {
	return t.AddSeconds(int64(h) * SecondsPerHour)
}

func (t TimeInstant) Time() time.Time {
	return NetworkEpoch.Add(time.Duration(t) * time.Second)
}
