package handler

import (
	"github.com/userhub/user-management/internal/core/domain"
	"github.com/userhub/user-management/internal/core/ports"
)

// --- Request → Service input ---

func toRegisterInput(req registerRequest) ports.RegisterInput {
	return ports.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Image:    req.Image,
	}
}

func toLoginInput(req loginRequest, role string) ports.LoginInput {
	return ports.LoginInput{
		Email:    req.Email,
		Password: req.Password,
		Role:     role,
	}
}

func toUpdateProfileInput(req updateProfileRequest) ports.UpdateProfileInput {
	return ports.UpdateProfileInput{
		Name:  req.Name,
		Email: req.Email,
		Image: req.Image,
	}
}

func toAdminCreateInput(req createUserRequest) ports.AdminCreateUserInput {
	return ports.AdminCreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Image:    req.Image,
		Role:     req.Role,
	}
}

func toAdminEditInput(req editUserRequest) ports.AdminEditUserInput {
	return ports.AdminEditUserInput{
		ID:    req.ID,
		Name:  req.Name,
		Email: req.Email,
	}
}

// --- Domain → Response ---

// toUserResponse never copies the password hash.
func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Image:     u.Image,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func toUserResponses(users []*domain.User) []userResponse {
	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return out
}
