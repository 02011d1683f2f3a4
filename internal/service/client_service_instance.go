package service

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/gmc-client/internal/adapter"
	"github.com/MKhiriev/gmc-client/models"
)

type clientInstanceService struct {
	adapter adapter.ServerAdapter
}

func NewClientInstanceService(serverAdapter adapter.ServerAdapter) ClientInstanceService {
	return &clientInstanceService{adapter: serverAdapter}
}

func (i *clientInstanceService) FetchInstanceInfo(ctx context.Context) (models.InstanceInfo, error) {
	info, err := i.adapter.GetInstanceInfo(ctx)
	if err != nil {
		return models.InstanceInfo{}, fmt.Errorf("fetch instance info: %w", err)
	}
	return info, nil
}

func (i *clientInstanceService) FetchCaptcha(ctx context.Context) (string, error) {
	captcha, err := i.adapter.GetCaptcha(ctx)
	if err != nil {
		return "", fmt.Errorf("fetch captcha: %w", err)
	}
	return captcha.ID, nil
}

func (i *clientInstanceService) FetchCaptchaImage(ctx context.Context, id string, w io.Writer) error {
	if err := i.adapter.GetCaptchaImage(ctx, id, w); err != nil {
		return fmt.Errorf("fetch captcha image: %w", err)
	}
	return nil
}
