package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/gmc-client/internal/mock"
	"github.com/MKhiriev/gmc-client/models"
)

func TestClientInstanceService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdapter := mock.NewMockServerAdapter(ctrl)
	svc := NewClientInstanceService(mockAdapter)
	ctx := context.Background()

	mockAdapter.EXPECT().GetInstanceInfo(ctx).Return(models.InstanceInfo{Name: "GMC", Captcha: true}, nil)
	mockAdapter.EXPECT().GetCaptcha(ctx).Return(models.Captcha{ID: "cap-1"}, nil)
	mockAdapter.EXPECT().GetCaptchaImage(ctx, "cap-1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, w io.Writer) error {
			_, err := w.Write([]byte{0x89, 'P', 'N', 'G'})
			return err
		},
	)

	info, err := svc.FetchInstanceInfo(ctx)
	require.NoError(t, err)
	assert.True(t, info.Captcha)

	id, err := svc.FetchCaptcha(ctx)
	require.NoError(t, err)
	assert.Equal(t, "cap-1", id)

	var buf bytes.Buffer
	require.NoError(t, svc.FetchCaptchaImage(ctx, id, &buf))
	assert.Equal(t, 4, buf.Len())
}

func TestClientInstanceService_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdapter := mock.NewMockServerAdapter(ctrl)
	svc := NewClientInstanceService(mockAdapter)
	ctx := context.Background()
	boom := errors.New("connection refused")

	mockAdapter.EXPECT().GetInstanceInfo(ctx).Return(models.InstanceInfo{}, boom)
	mockAdapter.EXPECT().GetCaptcha(ctx).Return(models.Captcha{}, boom)

	_, err := svc.FetchInstanceInfo(ctx)
	assert.ErrorIs(t, err, boom)

	_, err = svc.FetchCaptcha(ctx)
	assert.ErrorIs(t, err, boom)
}
