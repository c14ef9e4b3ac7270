package model

import "strings"

// tenantRepoSuffix is appended to a tenant name to form the repository that
// receives workflow dispatches.
const tenantRepoSuffix = ".bootstrap.infra"

// TenantTarget is a single (tenant, environment) notification target parsed
// from the update_tenant_environments input.
type TenantTarget struct {
	Tenant      string
	Environment string
}

// RepositoryName returns the name of the tenant's bootstrap repository,
// without the owner prefix.
func (t TenantTarget) RepositoryName() string {
	return t.Tenant + tenantRepoSuffix
}

// Repository returns the full name of the tenant's bootstrap repository.
func (t TenantTarget) Repository(owner string) string {
	return owner + "/" + t.RepositoryName()
}

// ParseTenantMappings parses newline-separated "tenant=env1,env2" entries
// into notification targets. Entries without "=", with an empty tenant, or
// with only empty environment tokens are skipped, never fatal.
func ParseTenantMappings(raw string) []TenantTarget {
	var targets []TenantTarget

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		tenant, envs, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}

		tenant = strings.TrimSpace(tenant)
		if tenant == "" {
			continue
		}

		for _, env := range strings.Split(envs, ",") {
			env = strings.TrimSpace(env)
			if env == "" {
				continue
			}
			targets = append(targets, TenantTarget{Tenant: tenant, Environment: env})
		}
	}

	return targets
}
