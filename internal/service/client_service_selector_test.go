package service

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/MKhiriev/go-tg-userbot/internal/logger"
	"github.com/MKhiriev/go-tg-userbot/internal/mock"
	"github.com/MKhiriev/go-tg-userbot/internal/tui"
	"github.com/MKhiriev/go-tg-userbot/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var dialogs = []models.Conversation{
	{ID: 42, Name: "Alice", Kind: models.KindOther},
	{ID: -1001, Name: "Go Devs", Kind: models.KindGroup},
	{ID: -1002, Name: "News", Kind: models.KindChannel},
	{ID: 7, Name: "Some Bot", Kind: models.KindOther},
	{ID: -1003, Name: "Gophers", Kind: models.KindGroup},
}

func newTestSelectorSvc(
	t *testing.T,
	ctrl *gomock.Controller,
	script string,
) (
	ClientSelectorService,
	*mock.MockConfigStore,
	*mock.MockMessenger,
	*bytes.Buffer,
) {
	t.Helper()
	mockStore := mock.NewMockConfigStore(ctrl)
	mockMessenger := mock.NewMockMessenger(ctrl)
	out := &bytes.Buffer{}
	console := tui.NewConsoleWithIO(strings.NewReader(script), out)

	svc := NewClientSelectorService(mockStore, mockMessenger, console, logger.Nop())
	return svc, mockStore, mockMessenger, out
}

func TestClientSelectorService_Select_FreshPick(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockStore, mockMessenger, out := newTestSelectorSvc(t, ctrl, "3, 1\n")
	ctx := context.Background()
	cfg := models.Configuration{Credentials: validCreds}

	mockMessenger.EXPECT().Conversations(ctx).Return(dialogs, nil)
	mockStore.EXPECT().Save(ctx, models.Configuration{
		Credentials:    validCreds,
		SelectedGroups: []int64{-1003, -1001},
	}).Return(nil)

	ids, err := svc.Select(ctx, cfg)
	require.NoError(t, err)
	assert.Equal(t, []int64{-1003, -1001}, ids)

	text := out.String()
	assert.Contains(t, text, "1. Go Devs")
	assert.Contains(t, text, "2. News")
	assert.Contains(t, text, "3. Gophers")
	assert.NotContains(t, text, "Alice")
	// roster follows selection order with fresh labels
	assert.Contains(t, text, "    1. Gophers")
	assert.Contains(t, text, "    2. Go Devs")
}

func TestClientSelectorService_Select_RoundTripReuse(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	first, mockStore, mockMessenger, _ := newTestSelectorSvc(t, ctrl, "2,3\n")
	var saved models.Configuration
	mockMessenger.EXPECT().Conversations(ctx).Return(dialogs, nil)
	mockStore.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, cfg models.Configuration) error {
		saved = cfg
		return nil
	})

	ids, err := first.Select(ctx, models.Configuration{Credentials: validCreds})
	require.NoError(t, err)
	assert.Equal(t, []int64{-1002, -1003}, ids)

	// second run: no Save expectation, reuse must not persist or re-prompt
	second, _, secondMessenger, out := newTestSelectorSvc(t, ctrl, "yes\n")
	secondMessenger.EXPECT().Conversations(ctx).Return(dialogs, nil)

	again, err := second.Select(ctx, saved)
	require.NoError(t, err)
	assert.Equal(t, ids, again)
	assert.Contains(t, out.String(), "Continue with previous channels/groups -- News, Gophers? (Y/N)")
	assert.NotContains(t, out.String(), "Enter group numbers")
	assert.Contains(t, out.String(), "    1. News")
	assert.Contains(t, out.String(), "    2. Gophers")
}

func TestClientSelectorService_Select_ReuseReturnsSavedIDsUnchanged(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockMessenger, out := newTestSelectorSvc(t, ctrl, "Y\n")
	ctx := context.Background()

	// -999 is no longer visible; it is still returned, but not offered by name
	saved := []int64{-1003, -999, -1001}
	mockMessenger.EXPECT().Conversations(ctx).Return(dialogs, nil)

	ids, err := svc.Select(ctx, models.Configuration{Credentials: validCreds, SelectedGroups: saved})
	require.NoError(t, err)
	assert.Equal(t, saved, ids)
	assert.Contains(t, out.String(), "-- Gophers, Go Devs? (Y/N)")
}

func TestClientSelectorService_Select_DeclineAndReask(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockStore, mockMessenger, out := newTestSelectorSvc(t, ctrl, "maybe\n\nn\n2\n")
	ctx := context.Background()

	mockMessenger.EXPECT().Conversations(ctx).Return(dialogs, nil)
	mockStore.EXPECT().Save(ctx, gomock.Any()).Return(nil)

	ids, err := svc.Select(ctx, models.Configuration{SelectedGroups: []int64{-1001}})
	require.NoError(t, err)
	assert.Equal(t, []int64{-1002}, ids)
	assert.Equal(t, 2, strings.Count(out.String(), "Please answer Y or N"))
}

func TestClientSelectorService_Select_InvalidInputReprompts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockStore, mockMessenger, out := newTestSelectorSvc(t, ctrl, "\nfoo\n0\n4\n1,x\n1\n")
	ctx := context.Background()

	mockMessenger.EXPECT().Conversations(ctx).Return(dialogs, nil)
	mockStore.EXPECT().Save(ctx, gomock.Any()).Return(nil)

	ids, err := svc.Select(ctx, models.Configuration{})
	require.NoError(t, err)
	assert.Equal(t, []int64{-1001}, ids)
	assert.Equal(t, 5, strings.Count(out.String(), "Invalid selection"))
}

func TestClientSelectorService_Select_StaleSelectionGoesStraightToPick(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockStore, mockMessenger, out := newTestSelectorSvc(t, ctrl, "1\n")
	ctx := context.Background()

	mockMessenger.EXPECT().Conversations(ctx).Return(dialogs, nil)
	mockStore.EXPECT().Save(ctx, gomock.Any()).Return(nil)

	_, err := svc.Select(ctx, models.Configuration{SelectedGroups: []int64{-5, -6}})
	require.NoError(t, err)
	assert.NotContains(t, out.String(), "Continue with previous")
}

func TestClientSelectorService_Select_NoGroups(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockMessenger, out := newTestSelectorSvc(t, ctrl, "")
	ctx := context.Background()

	mockMessenger.EXPECT().Conversations(ctx).Return([]models.Conversation{dialogs[0], dialogs[3]}, nil)

	ids, err := svc.Select(ctx, models.Configuration{})
	require.NoError(t, err)
	assert.Empty(t, ids)
	assert.Contains(t, out.String(), "No groups or channels found")
}

func TestClientSelectorService_Select_TransportError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockMessenger, _ := newTestSelectorSvc(t, ctrl, "")
	ctx := context.Background()

	mockMessenger.EXPECT().Conversations(ctx).Return(nil, errors.New("FLOOD_WAIT"))

	_, err := svc.Select(ctx, models.Configuration{})
	require.ErrorIs(t, err, ErrListConversations)
}

func TestClientSelectorService_Select_Quit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockMessenger, _ := newTestSelectorSvc(t, ctrl, "")
	ctx := context.Background()

	mockMessenger.EXPECT().Conversations(ctx).Return(dialogs, nil)

	_, err := svc.Select(ctx, models.Configuration{})
	require.ErrorIs(t, err, tui.ErrUserQuit)
}

func TestClientSelectorService_Resolve(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockMessenger, _ := newTestSelectorSvc(t, ctrl, "")
	ctx := context.Background()

	mockMessenger.EXPECT().Conversations(ctx).Return(dialogs, nil).Times(1)

	got, err := svc.Resolve(ctx, []int64{-1003, -999, 42, -1002})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Gophers", got[0].Name)
	assert.Equal(t, "News", got[1].Name)

	// served from the cached listing
	got, err = svc.Resolve(ctx, []int64{-1001})
	require.NoError(t, err)
	assert.Equal(t, "Go Devs", got[0].Name)
}
