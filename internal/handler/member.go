package handler

import (
	"github.com/deppfellow/fitness-center/internal/model"
	"github.com/deppfellow/fitness-center/internal/server"
	"github.com/deppfellow/fitness-center/internal/service"
	"github.com/labstack/echo/v4"
)

const (
	MessageMemberAdded   = "Member added successfully!"
	MessageMemberUpdated = "Member updated successfully!"
	MessageMemberDeleted = "Member deleted successfully!"
)

type MemberHandler struct {
	Handler
	members *service.MemberService
}

func NewMemberHandler(s *server.Server, members *service.MemberService) *MemberHandler {
	return &MemberHandler{
		Handler: NewHandler(s),
		members: members,
	}
}

func (h *MemberHandler) CreateMember(c echo.Context, req *model.CreateMemberRequest) (*CreatedResponse, error) {
	id, err := h.members.Create(c.Request().Context(), req.Fields())
	if err != nil {
		return nil, err
	}
	return &CreatedResponse{Message: MessageMemberAdded, ID: id}, nil
}

func (h *MemberHandler) ListMembers(c echo.Context, _ *model.ListMembersRequest) ([]MemberResponse, error) {
	members, err := h.members.List(c.Request().Context())
	if err != nil {
		return nil, err
	}

	resp := make([]MemberResponse, 0, len(members))
	for _, m := range members {
		resp = append(resp, toMemberResponse(m))
	}
	return resp, nil
}

func (h *MemberHandler) GetMember(c echo.Context, req *model.GetMemberRequest) (*MemberResponse, error) {
	member, err := h.members.Get(c.Request().Context(), req.ID)
	if err != nil {
		return nil, err
	}

	resp := toMemberResponse(*member)
	return &resp, nil
}

func (h *MemberHandler) UpdateMember(c echo.Context, req *model.UpdateMemberRequest) (*MessageResponse, error) {
	if err := h.members.Update(c.Request().Context(), req.ID, req.Fields()); err != nil {
		return nil, err
	}
	return &MessageResponse{Message: MessageMemberUpdated}, nil
}

func (h *MemberHandler) DeleteMember(c echo.Context, req *model.DeleteMemberRequest) (*MessageResponse, error) {
	if err := h.members.Delete(c.Request().Context(), req.ID); err != nil {
		return nil, err
	}
	return &MessageResponse{Message: MessageMemberDeleted}, nil
}
