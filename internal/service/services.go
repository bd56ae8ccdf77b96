package service

import (
	"github.com/mlukin/go-expense-tracker/internal/config"
	"github.com/mlukin/go-expense-tracker/internal/logger"
	"github.com/mlukin/go-expense-tracker/internal/store"
)

type Services struct {
	AuthService    AuthService
	ExpenseService ExpenseService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.App, logger),
		ExpenseService: NewExpenseService(storages.ExpenseRepository, logger),
	}
}
