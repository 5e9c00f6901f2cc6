package service

import (
	"errors"
	"memberbot/internal/core/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestApplicationService_Submit(t *testing.T) {
	tests := []struct {
		name      string
		message   *domain.Message
		mockSetup func(st *MockStore, se *MockSender)
		wantErr   error
		anyErr    bool
	}{
		{
			name:    "stores and sends embed with assigned id",
			message: makeMessage(domain.ApplicationChannel, "let me in", "http://x/a.png"),
			mockSetup: func(st *MockStore, se *MockSender) {
				st.On("Create", mock.Anything, mock.MatchedBy(func(a *domain.Application) bool {
					return a.Status == domain.Pending && a.AttachmentURL == "http://x/a.png"
				})).Return(int64(5), nil)
				se.On("SendEmbed", mock.Anything, "100", mock.MatchedBy(func(e *domain.Embed) bool {
					return e.Fields[0].Value == "Author's Discord ID: 200\nApplication ID: 5"
				})).Return(nil)
			},
		},
		{
			name:      "no attachment",
			message:   makeMessage(domain.ApplicationChannel, "let me in"),
			mockSetup: func(_ *MockStore, _ *MockSender) {},
			wantErr:   domain.ErrNoAttachment,
		},
		{
			name:    "store failure skips send",
			message: makeMessage(domain.ApplicationChannel, "let me in", "http://x/a.png"),
			mockSetup: func(st *MockStore, _ *MockSender) {
				st.On("Create", mock.Anything, mock.Anything).Return(int64(0), errors.New("disk full"))
			},
			anyErr: true,
		},
		{
			name:    "send failure is returned",
			message: makeMessage(domain.ApplicationChannel, "let me in", "http://x/a.png"),
			mockSetup: func(st *MockStore, se *MockSender) {
				st.On("Create", mock.Anything, mock.Anything).Return(int64(1), nil)
				se.On("SendEmbed", mock.Anything, "100", mock.Anything).Return(errors.New("forbidden"))
			},
			anyErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			st := new(MockStore)
			se := new(MockSender)
			tc.mockSetup(st, se)

			err := NewApplicationService(st, se).Submit(t.Context(), tc.message)

			switch {
			case tc.wantErr != nil:
				require.ErrorIs(t, err, tc.wantErr)
			case tc.anyErr:
				require.Error(t, err)
			default:
				require.NoError(t, err)
			}

			st.AssertExpectations(t)
			se.AssertExpectations(t)
		})
	}
}

func TestApplicationService_Review(t *testing.T) {
	now := time.Date(2026, 10, 17, 10, 0, 0, 0, time.UTC)
	reviewed := &domain.Application{ID: 3, Status: domain.Accepted, ReviewedBy: "mod"}

	tests := []struct {
		name      string
		status    domain.ApplicationStatus
		mockSetup func(st *MockStore)
		want      *domain.Application
		wantErr   error
	}{
		{
			name:   "accepts pending application",
			status: domain.Accepted,
			mockSetup: func(st *MockStore) {
				st.On("UpdateStatus", mock.Anything, int64(3), domain.Accepted, "mod", now).Return(nil)
				st.On("Get", mock.Anything, int64(3)).Return(reviewed, nil)
			},
			want: reviewed,
		},
		{
			name:      "pending is not a review decision",
			status:    domain.Pending,
			mockSetup: func(_ *MockStore) {},
			wantErr:   domain.ErrBadArguments,
		},
		{
			name:   "already reviewed",
			status: domain.Rejected,
			mockSetup: func(st *MockStore) {
				st.On("UpdateStatus", mock.Anything, int64(3), domain.Rejected, "mod", now).
					Return(domain.ErrAlreadyReviewed)
			},
			wantErr: domain.ErrAlreadyReviewed,
		},
		{
			name:   "not found",
			status: domain.Rejected,
			mockSetup: func(st *MockStore) {
				st.On("UpdateStatus", mock.Anything, int64(3), domain.Rejected, "mod", now).
					Return(domain.ErrApplicationNotFound)
			},
			wantErr: domain.ErrApplicationNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			st := new(MockStore)
			tc.mockSetup(st)

			svc := NewApplicationService(st, new(MockSender))
			svc.now = func() time.Time { return now }

			got, err := svc.Review(t.Context(), 3, tc.status, "mod")
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.want, got)
			}

			st.AssertExpectations(t)
		})
	}
}

func TestApplicationService_ListPending(t *testing.T) {
	st := new(MockStore)
	pending := []domain.Application{{ID: 1, Status: domain.Pending}}
	st.On("List", mock.Anything, domain.Pending).Return(pending, nil)

	got, err := NewApplicationService(st, new(MockSender)).ListPending(t.Context())

	require.NoError(t, err)
	assert.Equal(t, pending, got)
}
