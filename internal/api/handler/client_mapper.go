package handler

import (
	"github.com/bankcore/bank-client-api/internal/core/domain"
	"github.com/bankcore/bank-client-api/internal/core/ports"
)

// --- Request → Service input ---

func toCreateInput(req createClientRequest) ports.CreateClientInput {
	return ports.CreateClientInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
		AccountType: req.AccountType,
		Balance:     req.Balance,
	}
}

func toUpdateInput(req updateClientRequest) ports.UpdateClientInput {
	return ports.UpdateClientInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
		AccountType: req.AccountType,
		Balance:     req.Balance,
		IsActive:    req.IsActive,
	}
}

// --- Service result → HTTP response ---

func toClientResponse(v ports.ClientView) clientResponse {
	return clientResponse{
		ID:          v.ID,
		FirstName:   v.FirstName,
		LastName:    v.LastName,
		FullName:    v.FullName,
		Email:       v.Email,
		PhoneNumber: v.PhoneNumber,
		Address:     v.Address,
		AccountType: v.AccountType,
		Balance:     v.Balance,
		CreatedAt:   v.CreatedAt.UTC(),
		IsActive:    v.IsActive,
	}
}

func toClientResponses(views []ports.ClientView) []clientResponse {
	out := make([]clientResponse, 0, len(views))
	for _, v := range views {
		out = append(out, toClientResponse(v))
	}
	return out
}

func toExternalUserResponse(u domain.ExternalUser) externalUserResponse {
	resp := externalUserResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Phone: u.Phone,
	}
	if u.Address != nil {
		resp.Address = &externalAddressResponse{
			Street: u.Address.Street,
			City:   u.Address.City,
		}
	}
	return resp
}

func toExternalUserResponses(users []domain.ExternalUser) []externalUserResponse {
	out := make([]externalUserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toExternalUserResponse(u))
	}
	return out
}
