package ports

import "go.trai.ch/kiln/internal/core/domain"

// Reporter presents the outcome of an emission to the user.
//
//go:generate go run go.uber.org/mock/mockgen -source=reporter.go -destination=mocks/mock_reporter.go -package=mocks
type Reporter interface {
	Report(report *domain.EmissionReport)
}
