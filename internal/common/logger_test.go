package common

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
)

func TestLogger(t *testing.T) {
	assert.Equal(t, logrus.StandardLogger(), Logger(context.Background()))

	logger, hook := test.NewNullLogger()
	ctx := WithLogger(context.Background(), logger.WithField("job", "build"))
	Logger(ctx).Info("hello")

	if assert.Len(t, hook.Entries, 1) {
		assert.Equal(t, "build", hook.LastEntry().Data["job"])
	}
}
