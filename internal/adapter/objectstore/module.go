package objectstore

import (
	"context"

	"go.uber.org/fx"

	"github.com/ekeukwu/market/internal/config"
)

// Module wires the S3 uploader for dependency injection.
var Module = fx.Provide(newUploader)

type uploaderParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
}

func newUploader(p uploaderParams) (Uploader, error) {
	return NewS3Uploader(p.Ctx, Config{
		Endpoint:      p.Config.S3Endpoint,
		Region:        p.Config.S3Region,
		Bucket:        p.Config.S3Bucket,
		AccessKey:     p.Config.S3AccessKey,
		SecretKey:     p.Config.S3SecretKey,
		PublicBaseURL: p.Config.S3PublicBaseURL,
	})
}
