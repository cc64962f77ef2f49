package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/billing-admin/internal/api/dto"
	"github.com/spec-kit/billing-admin/internal/domain"
	"github.com/spec-kit/billing-admin/internal/service"
	"github.com/spec-kit/billing-admin/internal/view"
)

// StaffHandler exposes the operator management screens. Routes using it are
// owner-only.
type StaffHandler struct {
	accounts *service.AccountService
	pageSize int
}

// NewStaffHandler constructs handler.
func NewStaffHandler(accounts *service.AccountService, pageSize int) *StaffHandler {
	return &StaffHandler{accounts: accounts, pageSize: pageSize}
}

func staffCollection(staff []domain.StaffMember, pageSize int) *view.Collection[domain.StaffMember] {
	return view.NewCollection(staff, view.Config[domain.StaffMember]{
		Searchable: []func(domain.StaffMember) string{
			func(s domain.StaffMember) string { return s.FullName },
			func(s domain.StaffMember) string { return s.Email },
			func(s domain.StaffMember) string { return string(s.Role) },
		},
		SortKeys: map[string]view.SortKey[domain.StaffMember]{
			"full_name": func(s domain.StaffMember) (string, bool) { return s.FullName, true },
			"email":     func(s domain.StaffMember) (string, bool) { return s.Email, true },
			"role":      func(s domain.StaffMember) (string, bool) { return string(s.Role), true },
			"shop_id": func(s domain.StaffMember) (string, bool) {
				if s.ShopID == nil {
					return "", false
				}
				return *s.ShopID, true
			},
		},
		DefaultSort: "full_name",
		PageSize:    pageSize,
	})
}

// List handles GET /staff.
func (h *StaffHandler) List(c *fiber.Ctx) error {
	staff, err := h.accounts.ListStaff(c.Context())
	if err != nil {
		return err
	}

	page := applyListQuery(staffCollection(staff, h.pageSize), parseListQuery(c))

	items := make([]dto.StaffResponse, 0, len(page.Items))
	for _, member := range page.Items {
		items = append(items, staffResponse(&member))
	}
	return c.JSON(fiber.Map{"data": items, "meta": pageMeta(page)})
}

// Get handles GET /staff/:id.
func (h *StaffHandler) Get(c *fiber.Ctx) error {
	staff, err := h.accounts.GetStaff(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": staffResponse(staff)})
}

// Create handles POST /staff.
func (h *StaffHandler) Create(c *fiber.Ctx) error {
	var req dto.StaffRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.FullName == "" || req.Email == "" || req.Password == "" || req.Role == "" {
		return fiber.NewError(http.StatusBadRequest, "full_name, email, password, role required")
	}
	role := domain.StaffRole(req.Role)
	switch role {
	case domain.StaffRoleOwner, domain.StaffRoleAdmin, domain.StaffRoleStaff:
	default:
		return fiber.NewError(http.StatusBadRequest, "unknown role")
	}

	staff, err := h.accounts.CreateStaff(c.Context(), req.FullName, req.Email, req.Password, role, req.ShopID)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": staffResponse(staff)})
}

// Update handles PUT /staff/:id.
func (h *StaffHandler) Update(c *fiber.Ctx) error {
	staff, err := h.accounts.GetStaff(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}

	var req dto.StaffRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.FullName != "" {
		staff.FullName = req.FullName
	}
	if req.Email != "" {
		staff.Email = req.Email
	}
	if req.Role != "" {
		staff.Role = domain.StaffRole(req.Role)
	}
	if req.ShopID != nil {
		staff.ShopID = req.ShopID
	}
	if req.Active != nil {
		staff.Active = *req.Active
	}

	if err := h.accounts.UpdateStaff(c.Context(), staff, req.Password); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": staffResponse(staff)})
}

// Delete handles DELETE /staff/:id.
func (h *StaffHandler) Delete(c *fiber.Ctx) error {
	if err := h.accounts.DeleteStaff(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func staffResponse(staff *domain.StaffMember) dto.StaffResponse {
	return dto.StaffResponse{
		ID:        staff.ID,
		FullName:  staff.FullName,
		Email:     staff.Email,
		Role:      string(staff.Role),
		ShopID:    staff.ShopID,
		Active:    staff.Active,
		CreatedAt: staff.CreatedAt,
	}
}
