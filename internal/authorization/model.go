// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"embed"
	"encoding/json"
	"fmt"

	fga "github.com/openfga/go-sdk"
)

//go:embed schema/*.json
var schemas embed.FS

type AuthorizationModelProvider struct {
	version string
}

// GetModel returns the embedded model for the provider version, nil if it cannot be loaded.
func (p *AuthorizationModelProvider) GetModel() *fga.AuthorizationModel {
	model, err := p.load()
	if err != nil {
		return nil
	}

	return model
}

func (p *AuthorizationModelProvider) load() (*fga.AuthorizationModel, error) {
	raw, err := schemas.ReadFile(fmt.Sprintf("schema/%s.json", p.version))
	if err != nil {
		return nil, err
	}

	model := new(fga.AuthorizationModel)
	if err := json.Unmarshal(raw, model); err != nil {
		return nil, err
	}

	return model, nil
}

func NewAuthorizationModelProvider(version string) *AuthorizationModelProvider {
	p := new(AuthorizationModelProvider)
	p.version = version

	return p
}
