package devops

import (
	"context"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

// ConsoleConfig is everything the admin console needs to run: where the
// attendance backend lives, where to listen, and where session state is
// persisted between restarts.
type ConsoleConfig struct {
	BackendURL  string `yaml:"backendUrl"`
	Listen      string `yaml:"listen"`
	SessionFile string `yaml:"sessionFile"`
}

var (
	once    sync.Once
	cfg     ConsoleConfig
	loadErr error
)

// LoadConsoleConfig loads configuration once per process. A local YAML file
// named by CONSOLE_CONFIG wins; otherwise the config is read from the
// "churchtrack-console" SSM parameter, which is how deployed consoles get
// their settings.
func LoadConsoleConfig(ctx context.Context) (ConsoleConfig, error) {
	once.Do(func() {
		var raw []byte

		if path := os.Getenv("CONSOLE_CONFIG"); path != "" {
			data, err := os.ReadFile(path)
			if err != nil {
				loadErr = fmt.Errorf("read config file: %w", err)
				return
			}
			raw = data
		} else {
			awsCfg, err := config.LoadDefaultConfig(ctx)
			if err != nil {
				loadErr = fmt.Errorf("load aws config: %w", err)
				return
			}

			client := ssm.NewFromConfig(awsCfg)
			out, err := client.GetParameter(ctx, &ssm.GetParameterInput{
				Name:           aws.String("churchtrack-console"),
				WithDecryption: aws.Bool(true),
			})
			if err != nil {
				loadErr = fmt.Errorf("get parameter: %w", err)
				return
			}
			raw = []byte(*out.Parameter.Value)
		}

		var parsed ConsoleConfig
		if err := yaml.Unmarshal(raw, &parsed); err != nil {
			loadErr = fmt.Errorf("unmarshal yaml: %w", err)
			return
		}

		if parsed.Listen == "" {
			parsed.Listen = ":8090"
		}
		if parsed.SessionFile == "" {
			parsed.SessionFile = ".churchtrack-session.json"
		}
		if parsed.BackendURL == "" {
			loadErr = fmt.Errorf("backendUrl is required")
			return
		}

		cfg = parsed
	})

	return cfg, loadErr
}
