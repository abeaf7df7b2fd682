package service

import (
	"time"

	"github.com/goodnatureofminers/safeaccount/internal/account"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Executor interface {
		Execute(cmd account.Command) error
	}
	TellerMetrics interface {
		ObserveApply(err error, size int, started time.Time)
	}
)
