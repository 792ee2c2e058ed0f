package awsconfig

import (
	"context"
	"fmt"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
)

// LoadConfig resolves the SDK configuration for the given region.
// An empty profile leaves credential resolution to the default chain.
func LoadConfig(ctx context.Context, region, profile string) (awssdk.Config, error) {
	opts := []func(*config.LoadOptions) error{
		config.WithRegion(region),
	}
	if profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(profile))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return awssdk.Config{}, fmt.Errorf("unable to load AWS SDK config: %w", err)
	}

	return awsCfg, nil
}
