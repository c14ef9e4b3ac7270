package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/edenlabllc/tenant-artifact-action/pkg/domain/model"
)

func TestParseTenantMappings(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []model.TenantTarget
	}{
		{
			name: "single tenant with two environments",
			raw:  "acme=staging,production",
			want: []model.TenantTarget{
				{Tenant: "acme", Environment: "staging"},
				{Tenant: "acme", Environment: "production"},
			},
		},
		{
			name: "multiple tenants over multiple lines",
			raw:  "acme=production\numbrella=staging,production",
			want: []model.TenantTarget{
				{Tenant: "acme", Environment: "production"},
				{Tenant: "umbrella", Environment: "staging"},
				{Tenant: "umbrella", Environment: "production"},
			},
		},
		{
			name: "entry without equals is skipped",
			raw:  "bad-entry-no-equals",
			want: nil,
		},
		{
			name: "empty tenant is skipped",
			raw:  "=production",
			want: nil,
		},
		{
			name: "empty environment tokens are skipped",
			raw:  "acme=,,staging,",
			want: []model.TenantTarget{
				{Tenant: "acme", Environment: "staging"},
			},
		},
		{
			name: "whitespace is trimmed",
			raw:  "  acme = staging , production ",
			want: []model.TenantTarget{
				{Tenant: "acme", Environment: "staging"},
				{Tenant: "acme", Environment: "production"},
			},
		},
		{
			name: "empty input",
			raw:  "",
			want: nil,
		},
		{
			name: "malformed lines do not block valid ones",
			raw:  "garbage\nacme=production",
			want: []model.TenantTarget{
				{Tenant: "acme", Environment: "production"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := model.ParseTenantMappings(tt.raw)
			gt.Value(t, got).Equal(tt.want)
		})
	}
}

func TestTenantTarget_Repository(t *testing.T) {
	target := model.TenantTarget{Tenant: "acme", Environment: "production"}
	gt.Value(t, target.RepositoryName()).Equal("acme.bootstrap.infra")
	gt.Value(t, target.Repository("org")).Equal("org/acme.bootstrap.infra")
}
