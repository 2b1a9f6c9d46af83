// Package service_mocks holds gomock doubles for the adapter and service
// interfaces declared in internal/services.
package service_mocks

//go:generate mockgen -source=../interfaces.go -destination=service_mocks.go -package=service_mocks
