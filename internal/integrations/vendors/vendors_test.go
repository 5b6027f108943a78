package vendors

import (
	"strings"
	"testing"

	model "github.com/privacykit/consent-manager/internal/integrations/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type collectSink struct {
	scripts []model.Script
}

func (s *collectSink) Inject(script model.Script) error {
	s.scripts = append(s.scripts, script)
	return nil
}

func TestDefaultRegistryGroups(t *testing.T) {
	registry := DefaultRegistry()

	expected := map[model.VendorGroup][]string{
		model.GroupAnalytics:   {"google-analytics", "google-tag-manager", "mixpanel"},
		model.GroupMarketing:   {"meta-pixel", "google-ads"},
		model.GroupPerformance: {"hotjar", "clarity"},
		model.GroupFunctional:  {"intercom", "hubspot"},
	}

	for group, names := range expected {
		adapters := registry.AdaptersFor(group)
		require.Len(t, adapters, len(names), "group %s", group)
		for _, name := range names {
			adapter, found := registry.Lookup(name)
			require.True(t, found, "vendor %s", name)
			assert.Equal(t, group, adapter.Group())
		}
	}
}

func TestAdaptersEmbedTokenInBootstrap(t *testing.T) {
	registry := DefaultRegistry()

	for _, name := range []string{
		"google-analytics", "google-tag-manager", "mixpanel", "meta-pixel",
		"google-ads", "hotjar", "clarity", "intercom", "hubspot",
	} {
		t.Run(name, func(t *testing.T) {
			adapter, found := registry.Lookup(name)
			require.True(t, found)

			sink := &collectSink{}
			require.NoError(t, adapter.Activate("TOKEN-123", sink))
			require.NotEmpty(t, sink.scripts)

			embedded := false
			for _, script := range sink.scripts {
				assert.Equal(t, name, script.Vendor)
				if strings.Contains(script.URL, "TOKEN-123") || strings.Contains(script.Inline, "TOKEN-123") {
					embedded = true
				}
			}
			assert.True(t, embedded, "activation must carry the configured token")
		})
	}
}

func TestAdaptersDeclareGlobalHandle(t *testing.T) {
	adapter := GoogleAnalytics{}
	sink := &collectSink{}

	require.NoError(t, adapter.Activate("G-TEST", sink))

	require.Len(t, sink.scripts, 2)
	assert.Equal(t, "dataLayer", sink.scripts[0].Handle)
	assert.Equal(t, "gtag", sink.scripts[1].Handle)
	assert.True(t, sink.scripts[0].Async)
}
