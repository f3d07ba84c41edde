package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"billkit/internal/port"
	"billkit/internal/service"
	"billkit/mocks"
)

func TestHSNService_Search_ShortQueryReturnsEmpty(t *testing.T) {
	hsnRepo := new(mocks.MockHSNRepo)
	svc := service.NewHSNService(hsnRepo)

	entries, err := svc.Search(context.Background(), " 7 ", 20)
	require.NoError(t, err)
	assert.Empty(t, entries)
	hsnRepo.AssertNotCalled(t, "Search", mock.Anything, mock.Anything, mock.Anything)
}

func TestHSNService_Search_TrimsQuery(t *testing.T) {
	hsnRepo := new(mocks.MockHSNRepo)
	svc := service.NewHSNService(hsnRepo)

	want := []port.HSNEntry{{Code: "7308", Description: "Structures of iron or steel", GSTRate: 18}}
	hsnRepo.On("Search", mock.Anything, "7308", 20).Return(want, nil)

	entries, err := svc.Search(context.Background(), "  7308  ", 20)
	require.NoError(t, err)
	assert.Equal(t, want, entries)
	hsnRepo.AssertExpectations(t)
}
