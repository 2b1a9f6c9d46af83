// Package repository_mocks holds gomock doubles for the credential and
// balance stores. Regenerate with: go generate ./internal/repositories/...
package repository_mocks

//go:generate mockgen -source=../interfaces.go -destination=repository_mocks.go -package=repository_mocks
