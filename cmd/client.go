package cmd

import (
	"github.com/spf13/cobra"

	"github.com/harou24/oa-cli/internal/config"
	"github.com/harou24/oa-cli/internal/credential"
	"github.com/harou24/oa-cli/internal/providers"
	"github.com/harou24/oa-cli/internal/redact"
)

// prompter asks for the API key when the config file has none.
var prompter credential.Prompter = credential.HuhPrompter{}

// newProvider resolves settings and the API key once, then hands the key to
// the client explicitly.
func newProvider(_ *cobra.Command) (*providers.OpenAI, error) {
	s, err := config.Load(config.Overrides{
		ConfigPath: configPath,
		BaseURL:    baseURL,
		Timeout:    timeout,
		APIKey:     apiKeyFlag,
	})
	if err != nil {
		return nil, err
	}

	key := s.APIKey
	if key == "" {
		key, err = credential.NewStore(s.ConfigPath, prompter).Resolve()
		if err != nil {
			return nil, err
		}
	}
	redact.Register(key)

	return providers.NewOpenAI(providers.Config{
		APIKey:  key,
		BaseURL: s.BaseURL,
		Timeout: s.Timeout,
	}), nil
}
