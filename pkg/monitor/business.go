package monitor

import (
	"github.com/prometheus/client_golang/prometheus"
)

// 业务指标在包初始化时创建, 未注册时计数照常进行, 只是不会被 /metrics 暴露
var (
	// MappedTransactionsTotal 请求映射结果, kind: transfer|importance|view, result: ok 或错误码
	MappedTransactionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "wallet_mapper_transactions_total",
		Help: "The total number of mapped transaction requests",
	}, []string{"kind", "result"})

	// WalletUnlockFailuresTotal 钱包解锁失败次数
	WalletUnlockFailuresTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "wallet_unlock_failures_total",
		Help: "The total number of failed wallet unlocks",
	}, []string{"reason"})

	// EventsPublishedTotal 审计事件投递结果
	EventsPublishedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "wallet_events_published_total",
		Help: "The total number of published transaction events",
	}, []string{"result"})
)

func registerBusinessMetrics(r prometheus.Registerer) {
	r.MustRegister(MappedTransactionsTotal, WalletUnlockFailuresTotal, EventsPublishedTotal)
}
