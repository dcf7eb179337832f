package http

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
)

// companyIDFromContext extracts the tenant boundary from the verified JWT.
// Every downstream query is scoped by this value.
func companyIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", fmt.Errorf("company_id claim is missing or invalid")
	}

	return companyID, nil
}
