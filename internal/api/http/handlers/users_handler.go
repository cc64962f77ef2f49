package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/billing-admin/internal/api/dto"
	"github.com/spec-kit/billing-admin/internal/domain"
	"github.com/spec-kit/billing-admin/internal/service"
	"github.com/spec-kit/billing-admin/internal/view"
)

// UsersHandler exposes the end-user account screens.
type UsersHandler struct {
	accounts *service.AccountService
	pageSize int
}

// NewUsersHandler constructs handler.
func NewUsersHandler(accounts *service.AccountService, pageSize int) *UsersHandler {
	return &UsersHandler{accounts: accounts, pageSize: pageSize}
}

func userCollection(users []domain.User, pageSize int) *view.Collection[domain.User] {
	return view.NewCollection(users, view.Config[domain.User]{
		Searchable: []func(domain.User) string{
			func(u domain.User) string { return u.FullName },
			func(u domain.User) string { return u.Email },
			func(u domain.User) string { return u.Phone },
		},
		SortKeys: map[string]view.SortKey[domain.User]{
			"full_name": func(u domain.User) (string, bool) { return u.FullName, true },
			"email":     func(u domain.User) (string, bool) { return u.Email, true },
			"status":    func(u domain.User) (string, bool) { return string(u.Status), true },
			"created_at": func(u domain.User) (string, bool) {
				return u.CreatedAt.UTC().Format("2006-01-02T15:04:05.000Z"), true
			},
		},
		DefaultSort: "full_name",
		PageSize:    pageSize,
	})
}

// List handles GET /users.
func (h *UsersHandler) List(c *fiber.Ctx) error {
	users, err := h.accounts.ListUsers(c.Context())
	if err != nil {
		return err
	}

	page := applyListQuery(userCollection(users, h.pageSize), parseListQuery(c))

	items := make([]dto.UserResponse, 0, len(page.Items))
	for _, user := range page.Items {
		items = append(items, userResponse(&user))
	}
	return c.JSON(fiber.Map{"data": items, "meta": pageMeta(page)})
}

// Get handles GET /users/:id.
func (h *UsersHandler) Get(c *fiber.Ctx) error {
	user, err := h.accounts.GetUser(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": userResponse(user)})
}

// Create handles POST /users.
func (h *UsersHandler) Create(c *fiber.Ctx) error {
	var req dto.UserRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.FullName == "" || req.Email == "" {
		return fiber.NewError(http.StatusBadRequest, "full_name and email required")
	}

	user, err := h.accounts.CreateUser(c.Context(), req.FullName, req.Email, req.Phone)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": userResponse(user)})
}

// Update handles PUT /users/:id.
func (h *UsersHandler) Update(c *fiber.Ctx) error {
	user, err := h.accounts.GetUser(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}

	var req dto.UserRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.FullName != "" {
		user.FullName = req.FullName
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if req.Phone != "" {
		user.Phone = req.Phone
	}
	if req.Status != "" {
		user.Status = domain.UserStatus(req.Status)
	}

	if err := h.accounts.UpdateUser(c.Context(), user); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": userResponse(user)})
}

// Delete handles DELETE /users/:id.
func (h *UsersHandler) Delete(c *fiber.Ctx) error {
	if err := h.accounts.DeleteUser(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func userResponse(user *domain.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        user.ID,
		FullName:  user.FullName,
		Email:     user.Email,
		Phone:     user.Phone,
		Status:    string(user.Status),
		CreatedAt: user.CreatedAt,
	}
}
