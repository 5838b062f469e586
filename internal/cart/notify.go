package cart

import "go.uber.org/zap"

// Notifier 面向用户的失败提示出口（CLI 打印到终端，测试用内存实现）
type Notifier interface {
	Notify(message string)
}

// LogNotifier 仅写日志的默认通知实现
type LogNotifier struct {
	log *zap.SugaredLogger
}

// NewLogNotifier 构造日志通知器
func NewLogNotifier(log *zap.SugaredLogger) *LogNotifier {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &LogNotifier{log: log}
}

// Notify 将提示写入日志
func (n *LogNotifier) Notify(message string) {
	n.log.Warnw("cart_notice", "message", message)
}
