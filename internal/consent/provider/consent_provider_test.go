package provider

import (
	"testing"

	model "github.com/privacykit/consent-manager/internal/consent/model"
	"github.com/privacykit/consent-manager/internal/system/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConsentProviderFromConfig(t *testing.T) {
	cfg := &config.Config{
		Storage: config.StorageConfig{Backend: "memory"},
		Consent: config.ConsentConfig{StorageKey: "acme-consent", Version: "1.0"},
	}

	consentProvider, err := NewConsentProvider(cfg, nil, nil, nil)
	require.NoError(t, err)
	defer consentProvider.Close()

	svc := consentProvider.GetConsentService()
	assert.False(t, svc.HasGivenConsent())

	svc.AcceptAll()
	assert.True(t, svc.HasConsentFor(model.CategoryAnalytics))
}

func TestNewConsentProviderRejectsUnknownBackend(t *testing.T) {
	cfg := &config.Config{
		Storage: config.StorageConfig{Backend: "redis"},
	}

	_, err := NewConsentProvider(cfg, nil, nil, nil)
	assert.Error(t, err)
}
