package render

import (
	"github.com/soccerdao/dao-cli/internal/domain/models"
	"github.com/soccerdao/dao-cli/internal/usecase"
)

// Renderer renders one kind of usecase result
type Renderer[T any] interface {
	Render(result T) error
}

var (
	_ Renderer[*models.MemberDirectory]  = (*MembersRenderer)(nil)
	_ Renderer[*usecase.ProposalsResult] = (*ProposalsRenderer)(nil)
)
