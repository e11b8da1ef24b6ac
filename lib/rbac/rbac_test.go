package rbac

import (
	"testing"

	"github.com/stretchr/testify/require"

	"bygg-tools-backend/models"
)

func TestRbac(t *testing.T) {
	t.Run(`pathToRegex check`, func(t *testing.T) {
		path, method, err := parseSwaggerPattern("/api/v1/forms/{id}/status [put]")
		require.Nil(t, err)
		require.Equal(t, PUT, method)
		r1 := pathToRegex(path)

		validUri := "/api/v1/forms/123-321/status"
		require.True(t, r1.MatchString(validUri))

		invalidUri := "/api/v1/forms/status"
		require.False(t, r1.MatchString(invalidUri))

		path, method, err = parseSwaggerPattern("/api/v1/projects/{id}/members/{userId} [put]")
		require.Nil(t, err)
		require.Equal(t, PUT, method)
		r2 := pathToRegex(path)

		validUri = "/api/v1/projects/123-321/members/qwe-ewr123-wr-12"
		require.True(t, r2.MatchString(validUri))

		invalidUri = "/api/v1/projects/we-ewr123-wr-12/members"
		require.False(t, r2.MatchString(invalidUri))
	})

	t.Run(`role rules`, func(t *testing.T) {
		i := &impl{
			rules:       map[HTTPMethod]*PathRule{},
			permissions: map[models.UserRole]map[models.Module][]models.Permission{},
		}
		i.initRules()

		ruleFn, found := i.GetRuleFunc("PUT", "/api/v1/forms/abc-123/status")
		require.True(t, found)
		require.True(t, ruleFn("c1", "u1", models.CompanyManagerRole, "/api/v1/forms/abc-123/status"))
		require.False(t, ruleFn("c1", "u1", models.CompanyUserRole, "/api/v1/forms/abc-123/status"))

		ruleFn, found = i.GetRuleFunc("POST", "/api/v1/forms/deviation")
		require.True(t, found)
		require.True(t, ruleFn("c1", "u1", models.CompanyUserRole, "/api/v1/forms/deviation"))

		ruleFn, found = i.GetRuleFunc("DELETE", "/api/v1/forms/abc-123")
		require.True(t, found)
		require.False(t, ruleFn("c1", "u1", models.CompanyManagerRole, "/api/v1/forms/abc-123"))
		require.True(t, ruleFn("c1", "u1", models.CompanyAdminRole, "/api/v1/forms/abc-123"))

		_, found = i.GetRuleFunc("GET", "/api/v1/unknown")
		require.False(t, found)
	})

	t.Run(`permission matrix`, func(t *testing.T) {
		i := &impl{
			rules:       map[HTTPMethod]*PathRule{},
			permissions: map[models.UserRole]map[models.Module][]models.Permission{},
		}
		i.initRules()

		perms := i.GetPermissions(models.CompanyUserRole)
		require.Contains(t, perms[models.FormModule], models.CreatePermission)
		require.NotContains(t, perms[models.FormModule], models.ProcessPermission)

		perms = i.GetPermissions(models.CompanyAdminRole)
		require.Contains(t, perms[models.FormModule], models.ProcessPermission)
		require.Contains(t, perms[models.FormModule], models.DeletePermission)
	})
}
