package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gorilla/mux"
	"github.com/soccerdao/dao-cli/internal/domain"
	"github.com/soccerdao/dao-cli/internal/domain/models"
	"github.com/soccerdao/dao-cli/internal/usecase"
)

// MembershipChecker is the membership gate
type MembershipChecker interface {
	Run(ctx context.Context, address common.Address) *models.MembershipStatus
}

// MemberLister builds the member directory
type MemberLister interface {
	Run(ctx context.Context, params usecase.ListMembersParams) (*models.MemberDirectory, error)
}

// ProposalLister loads the proposals snapshot
type ProposalLister interface {
	Run(ctx context.Context, params usecase.ListProposalsParams) (*usecase.ProposalsResult, error)
}

// ContractsChecker reports whether the DAO contracts are deployed
type ContractsChecker interface {
	Run(ctx context.Context) ([]usecase.ContractStatus, error)
}

type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"requestId,omitempty"`
}

type membershipResponse struct {
	Address string `json:"address"`
	Member  bool   `json:"member"`
	Balance string `json:"balance"`
}

type membersResponse struct {
	Members []models.Member `json:"members"`
	Partial bool            `json:"partial"`
}

type proposalsResponse struct {
	Proposals []*models.Proposal `json:"proposals"`
	HasVoted  bool               `json:"hasVoted"`
}

type contractResponse struct {
	Name     string `json:"name"`
	Address  string `json:"address"`
	Deployed bool   `json:"deployed"`
	Reason   string `json:"reason,omitempty"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Warn("failed to write response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	s.writeJSON(w, status, errorResponse{Error: msg, RequestID: RequestID(r.Context())})
}

// addressParam reads and validates an address from the route or the query
func addressParam(r *http.Request) (common.Address, error) {
	raw, ok := mux.Vars(r)["address"]
	if !ok {
		raw = r.URL.Query().Get("address")
	}
	if raw == "" {
		return common.Address{}, errors.New("address is required")
	}
	if !common.IsHexAddress(raw) {
		return common.Address{}, domain.ErrInvalidAddress
	}
	return common.HexToAddress(raw), nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	statuses, err := s.contracts.Run(r.Context())
	if err != nil {
		s.log.Error("readiness check failed", "error", err)
		s.writeError(w, r, http.StatusServiceUnavailable, err.Error())
		return
	}

	body := make([]contractResponse, len(statuses))
	for i, c := range statuses {
		body[i] = contractResponse{Name: c.Name, Address: c.Address.Hex(), Deployed: c.Deployed, Reason: c.Reason}
	}

	status := http.StatusOK
	if !usecase.AllDeployed(statuses) {
		status = http.StatusServiceUnavailable
	}
	s.writeJSON(w, status, body)
}

func (s *Server) handleMembership(w http.ResponseWriter, r *http.Request) {
	address, err := addressParam(r)
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	status := s.gate.Run(r.Context(), address)
	s.writeJSON(w, http.StatusOK, membershipResponse{
		Address: address.Hex(),
		Member:  status.Holds,
		Balance: balanceString(status),
	})
}

// gated resolves the address of a member-only request. It writes the error
// response and returns nil when the request must be refused.
func (s *Server) gated(w http.ResponseWriter, r *http.Request) *models.MembershipStatus {
	address, err := addressParam(r)
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, err.Error())
		return nil
	}

	status := s.gate.Run(r.Context(), address)
	if !status.Holds {
		s.metrics.gateDenied.Inc()
		s.writeError(w, r, http.StatusForbidden, domain.ErrNotMember.Error())
		return nil
	}
	return status
}

func (s *Server) handleMembers(w http.ResponseWriter, r *http.Request) {
	status := s.gated(w, r)
	if status == nil {
		return
	}

	dir, err := s.members.Run(r.Context(), usecase.ListMembersParams{
		Session: &models.Session{Address: status.Address},
		Status:  status,
	})
	if err != nil {
		s.respondUsecaseError(w, r, err)
		return
	}

	members := dir.Members
	if members == nil {
		members = []models.Member{}
	}
	s.writeJSON(w, http.StatusOK, membersResponse{Members: members, Partial: dir.Partial()})
}

func (s *Server) handleProposals(w http.ResponseWriter, r *http.Request) {
	status := s.gated(w, r)
	if status == nil {
		return
	}

	result, err := s.proposals.Run(r.Context(), usecase.ListProposalsParams{
		Session: &models.Session{Address: status.Address},
		Status:  status,
		Search:  r.URL.Query().Get("search"),
	})
	if err != nil {
		s.respondUsecaseError(w, r, err)
		return
	}

	proposals := result.Proposals
	if proposals == nil {
		proposals = []*models.Proposal{}
	}
	s.writeJSON(w, http.StatusOK, proposalsResponse{Proposals: proposals, HasVoted: result.HasVoted})
}

func (s *Server) respondUsecaseError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotMember):
		s.writeError(w, r, http.StatusForbidden, err.Error())
	default:
		s.log.Error("request failed", "path", r.URL.Path, "error", err, "request_id", RequestID(r.Context()))
		s.writeError(w, r, http.StatusInternalServerError, "internal error")
	}
}

func balanceString(status *models.MembershipStatus) string {
	if status.Balance == nil {
		return "0"
	}
	return status.Balance.String()
}
