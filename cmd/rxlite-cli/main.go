package main

import (
	"fmt"

	"github.com/mkideal/cli"
	"github.com/pkg/errors"
	rxlite "github.com/rxlite/rxlite-go"
	"go.uber.org/zap"
)

type opts struct {
	cli.Helper
	*zap.Logger

	Debug    bool `cli:"d, debug" usage:"Debug Output"`
	Requests int  `cli:"n, requests" name:"count" usage:"Number of mock requests to stream" dft:"5"`
	FailAt   int  `cli:"f, fail-at" name:"index" usage:"Fail the stream before this request index, -1 disables" dft:"-1"`
}

func (opts *opts) configureLogging() (err error) {
	if opts.Debug {
		rxlite.SetLoggerLevel(rxlite.LogLevelDebug)

		opts.Logger, err = zap.NewDevelopment()
	} else {
		rxlite.SetLoggerLevel(rxlite.LogLevelInfo)

		opts.Logger, err = zap.NewProduction()
	}

	if err != nil {
		return
	}

	rxLogger := opts.Logger.Named("rxlite")

	rxlite.SetLoggerDebug(func(format string, args ...interface{}) {
		rxLogger.Debug(fmt.Sprintf(format, args...))
	})
	rxlite.SetLoggerInfo(func(format string, args ...interface{}) {
		rxLogger.Info(fmt.Sprintf(format, args...))
	})
	rxlite.SetLoggerWarn(func(format string, args ...interface{}) {
		rxLogger.Warn(fmt.Sprintf(format, args...))
	})
	rxlite.SetLoggerError(func(format string, args ...interface{}) {
		rxLogger.Error(fmt.Sprintf(format, args...))
	})

	return
}

// requestSource builds the demo stream: a plain From over the mock records,
// or a failing producer when fail-at is set.
func (opts *opts) requestSource() rxlite.Observable[Request] {
	requests := mockRequests(opts.Requests)
	if opts.FailAt < 0 {
		return rxlite.From(requests...)
	}
	failAt := opts.FailAt
	return rxlite.Create(func(o *rxlite.Observer[Request]) rxlite.Teardown {
		for i, req := range requests {
			if i == failAt {
				o.Error(errors.Errorf("upstream refused request %d", i))
				break
			}
			o.Next(req)
		}
		o.Complete()
		return nil
	})
}

func main() {
	cli.Run(new(opts), func(cmdline *cli.Context) (err error) {
		opts := cmdline.Argv().(*opts)

		if err = opts.configureLogging(); err != nil {
			return
		}
		defer func() {
			_ = opts.Logger.Sync()
		}()

		opts.requestSource().Subscribe(rxlite.Handler[Request]{
			OnNext: func(req Request) {
				res := handleRequest(req)
				opts.Logger.Info("handled request",
					zap.String("user", req.User),
					zap.Int("status", res.Status),
					zap.String("message", res.Message))
			},
			OnError: func(e error) {
				res := handleError(e)
				opts.Logger.Warn("stream failed",
					zap.Int("status", res.Status),
					zap.String("message", res.Message))
			},
			OnComplete: func() {
				opts.Logger.Info("stream completed")
			},
		})

		return
	})
}
