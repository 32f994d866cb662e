// Command admintoken issues a bearer token for the admin API, signed with secretKey.access.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"backoffice/config"
	"backoffice/internal/domain/entity"
	"backoffice/internal/infra/auth"

	"github.com/pkg/errors"
)

func main() {
	subject := flag.String("subject", "", "Operator identifier stored in the token subject (required)")
	roles := flag.String("roles", entity.RoleAdmin.String(), "Comma-separated roles (admin, viewer)")
	flag.Parse()

	if err := run(*subject, *roles); err != nil {
		fmt.Fprintf(os.Stderr, "admintoken: %+v\n", err)
		os.Exit(1)
	}
}

func run(subject, rawRoles string) error {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return errors.New("-subject is required")
	}

	roles, err := parseRoles(rawRoles)
	if err != nil {
		return err
	}

	cfg, err := config.New()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	tokenSvc, err := auth.NewJWTService(cfg)
	if err != nil {
		return errors.Wrap(err, "failed to create token service")
	}

	token, err := tokenSvc.GenerateAccessToken(subject, roles.ToStrings())
	if err != nil {
		return errors.WithStack(err)
	}

	fmt.Println(token)
	fmt.Fprintf(os.Stderr, "expires in %s\n", tokenSvc.GetAccessTokenDuration())

	return nil
}

func parseRoles(raw string) (entity.Roles, error) {
	var roles entity.Roles
	for _, part := range strings.Split(raw, ",") {
		role := entity.Role(strings.TrimSpace(part))
		if role == "" {
			continue
		}
		if !role.IsValid() {
			return nil, errors.Errorf("unknown role %q", role)
		}
		roles = append(roles, role)
	}
	if len(roles) == 0 {
		return nil, errors.New("at least one role is required")
	}

	return roles, nil
}
