package request

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    *time.Time
		wantErr bool
	}{
		{name: "date only", input: `"2026-09-01"`, want: timePtr(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC))},
		{name: "rfc3339", input: `"2026-09-01T10:30:00Z"`, want: timePtr(time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC))},
		{name: "null is unset", input: `null`, want: nil},
		{name: "empty string is unset", input: `""`, want: nil},
		{name: "garbage", input: `"next tuesday"`, wantErr: true},
		{name: "number", input: `20260901`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			err := json.Unmarshal([]byte(tt.input), &d)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			if tt.want == nil {
				assert.Nil(t, d.Ptr())
			} else {
				require.NotNil(t, d.Ptr())
				assert.True(t, tt.want.Equal(*d.Ptr()))
			}
		})
	}
}

func TestNumberUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		wantErr bool
	}{
		{name: "plain number", input: `42.5`, want: 42.5},
		{name: "quoted number", input: `"199"`, want: 199},
		{name: "null is zero", input: `null`, want: 0},
		{name: "empty string is zero", input: `""`, want: 0},
		{name: "garbage", input: `"lots"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var n Number
			err := json.Unmarshal([]byte(tt.input), &n)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, n.Float())
		})
	}
}

func TestProjectRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     ProjectRequest
		wantErr bool
	}{
		{name: "valid", req: ProjectRequest{Name: "Tech Expo", Currency: "EUR"}},
		{name: "name required", req: ProjectRequest{}, wantErr: true},
		{name: "name too short", req: ProjectRequest{Name: "A"}, wantErr: true},
		{name: "bad currency length", req: ProjectRequest{Name: "Tech Expo", Currency: "EURO"}, wantErr: true},
		{name: "bad website", req: ProjectRequest{Name: "Tech Expo", Website: "not a url"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestProjectRequestToDomainDefaultsCurrency(t *testing.T) {
	project := ProjectRequest{Name: "Tech Expo"}.ToDomain()

	assert.Equal(t, "USD", project.Currency)
}

func TestOrderRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     OrderRequest
		wantErr bool
	}{
		{name: "valid", req: OrderRequest{CustomerName: "Ada Lovelace", Status: "PAID"}},
		{name: "customer name required", req: OrderRequest{}, wantErr: true},
		{name: "unknown status", req: OrderRequest{CustomerName: "Ada", Status: "REFUNDED"}, wantErr: true},
		{name: "empty status allowed", req: OrderRequest{CustomerName: "Ada"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestOrderRequestToModelDefaults(t *testing.T) {
	order := OrderRequest{CustomerName: "Ada"}.ToModel(7)

	assert.Equal(t, uint(7), order.ProjectID)
	assert.Equal(t, "USD", order.Currency)
	assert.Equal(t, "INCOMPLETE", string(order.Status))
	assert.Equal(t, 1, order.Quantity)
}

func TestUtmRequestValidate(t *testing.T) {
	assert.Error(t, UtmRequest{}.Validate())
	assert.NoError(t, UtmRequest{Source: "google"}.Validate())
}

func TestUtmBulkRequestValidate(t *testing.T) {
	assert.NoError(t, UtmBulkRequest{Action: "delete", IDs: []uint{1}}.Validate())
	assert.NoError(t, UtmBulkRequest{Action: "reset", IDs: []uint{1, 2}}.Validate())
	assert.Error(t, UtmBulkRequest{Action: "truncate", IDs: []uint{1}}.Validate())
	assert.Error(t, UtmBulkRequest{Action: "delete"}.Validate())
}

func TestUtmTrackRequestValidate(t *testing.T) {
	assert.NoError(t, UtmTrackRequest{Event: "visit"}.Validate())
	assert.NoError(t, UtmTrackRequest{Event: "conversion"}.Validate())
	assert.Error(t, UtmTrackRequest{Event: "click"}.Validate())
	assert.Error(t, UtmTrackRequest{}.Validate())
}

func TestAgendaSessionRequestValidate(t *testing.T) {
	assert.NoError(t, AgendaSessionRequest{Title: "Opening", StartTime: "09:00", EndTime: "10:30"}.Validate())
	assert.NoError(t, AgendaSessionRequest{Title: "Opening"}.Validate())
	assert.Error(t, AgendaSessionRequest{Title: "Opening", StartTime: "9am"}.Validate())
	assert.Error(t, AgendaSessionRequest{Title: "Opening", StartTime: "25:00"}.Validate())
	assert.Error(t, AgendaSessionRequest{}.Validate())
}

func TestAttendeeRequestValidate(t *testing.T) {
	assert.NoError(t, AttendeeRequest{Name: "Grace Hopper", Email: "grace@example.com"}.Validate())
	assert.Error(t, AttendeeRequest{Name: "Grace Hopper"}.Validate())
	assert.Error(t, AttendeeRequest{Name: "Grace Hopper", Email: "not-an-email"}.Validate())
}

func timePtr(t time.Time) *time.Time {
	return &t
}
