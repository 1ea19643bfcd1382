package goroutine

import (
	"context"
	"runtime/debug"

	"github.com/sirupsen/logrus"

	"github.com/Nils2312/Fleksibelt-sub000/internal/logger"
)

// Go запускает фоновую задачу с перехватом panic. Паника логируется вместе
// со стеком и именем задачи, процесс продолжает работу.
func Go(ctx context.Context, name string, fn func(context.Context)) {
	go Run(ctx, name, fn)
}

// Run выполняет fn в текущей горутине с тем же перехватом panic.
// Возвращает true, если fn завершилась без паники.
func Run(ctx context.Context, name string, fn func(context.Context)) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			logger.Get().WithFields(logrus.Fields{
				"task":  name,
				"panic": r,
				"stack": string(debug.Stack()),
			}).Error("Panic in background task")
			ok = false
		}
	}()
	fn(ctx)
	return true
}
