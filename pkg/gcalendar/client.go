package gcalendar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// DefaultTokenPath is where scripts/gcal-auth writes the desktop OAuth token.
const DefaultTokenPath = "token.json"

// Client wraps the Google Calendar API service.
type Client struct {
	service *calendar.Service
}

// NewClientFromCredentialsFile creates a Calendar client from a credentials JSON file.
// Both Service Account keys and OAuth desktop credentials are accepted; the
// latter also need a token file produced by scripts/gcal-auth.
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath, tokenPath string) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data, tokenPath)
}

// NewClientFromCredentialsJSON creates a Calendar client from raw credentials JSON bytes.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte, tokenPath string) (*Client, error) {
	// Service account first
	jwtConfig, err := google.JWTConfigFromJSON(credentialsJSON, calendar.CalendarScope)
	if err == nil {
		svc, svcErr := calendar.NewService(ctx, option.WithTokenSource(jwtConfig.TokenSource(ctx)))
		if svcErr != nil {
			return nil, fmt.Errorf("failed to create calendar service: %w", svcErr)
		}
		return &Client{service: svc}, nil
	}

	oauthConfig, cfgErr := OAuthConfigFromJSON(credentialsJSON)
	if cfgErr != nil {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}

	if tokenPath == "" {
		tokenPath = DefaultTokenPath
	}
	tokenData, tokenErr := os.ReadFile(tokenPath)
	if tokenErr != nil {
		return nil, fmt.Errorf("google credentials are OAuth desktop type but %s was not found: run scripts/gcal-auth", tokenPath)
	}

	var tok oauth2.Token
	if jsonErr := json.Unmarshal(tokenData, &tok); jsonErr != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", tokenPath, jsonErr)
	}

	svc, svcErr := calendar.NewService(ctx, option.WithTokenSource(oauthConfig.TokenSource(ctx, &tok)))
	if svcErr != nil {
		return nil, fmt.Errorf("failed to create calendar service from OAuth token: %w", svcErr)
	}
	return &Client{service: svc}, nil
}

// OAuthConfigFromJSON reads "installed" desktop credentials.
func OAuthConfigFromJSON(credentialsJSON []byte) (*oauth2.Config, error) {
	var creds struct {
		Installed struct {
			ClientID     string   `json:"client_id"`
			ClientSecret string   `json:"client_secret"`
			RedirectURIs []string `json:"redirect_uris"`
		} `json:"installed"`
	}
	if err := json.Unmarshal(credentialsJSON, &creds); err != nil {
		return nil, err
	}
	if creds.Installed.ClientID == "" {
		return nil, fmt.Errorf("missing installed.client_id")
	}

	cfg := &oauth2.Config{
		ClientID:     creds.Installed.ClientID,
		ClientSecret: creds.Installed.ClientSecret,
		Scopes:       []string{calendar.CalendarScope},
		Endpoint:     google.Endpoint,
	}
	if len(creds.Installed.RedirectURIs) > 0 {
		cfg.RedirectURL = creds.Installed.RedirectURIs[0]
	}
	return cfg, nil
}

// NewClientFromHTTP creates a Calendar client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

// CreateEvent creates a new Google Calendar event.
func (c *Client) CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error) {
	event := &calendar.Event{
		Summary:     req.Summary,
		Description: req.Description,
		ColorId:     req.ColorID,
		Start: &calendar.EventDateTime{
			DateTime: req.StartTime.Format(time.RFC3339),
			TimeZone: req.Timezone,
		},
		End: &calendar.EventDateTime{
			DateTime: req.EndTime.Format(time.RFC3339),
			TimeZone: req.Timezone,
		},
	}
	if req.BlockKey != "" {
		event.ExtendedProperties = &calendar.EventExtendedProperties{
			Private: map[string]string{BlockKeyProperty: req.BlockKey},
		}
	}

	created, err := c.service.Events.Insert(calendarID(req.CalendarID), event).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar event: %w", err)
	}

	return &Event{
		ID:          created.Id,
		Summary:     created.Summary,
		Description: created.Description,
		HtmlLink:    created.HtmlLink,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		BlockKey:    req.BlockKey,
	}, nil
}

// ListEvents returns single events overlapping [TimeMin, TimeMax), ordered by start.
func (c *Client) ListEvents(ctx context.Context, req ListEventsRequest) ([]Event, error) {
	call := c.service.Events.List(calendarID(req.CalendarID)).
		Context(ctx).
		SingleEvents(true).
		OrderBy("startTime").
		TimeMin(req.TimeMin.Format(time.RFC3339)).
		TimeMax(req.TimeMax.Format(time.RFC3339))
	if req.MaxResults > 0 {
		call = call.MaxResults(req.MaxResults)
	}

	var events []Event
	err := call.Pages(ctx, func(page *calendar.Events) error {
		for _, item := range page.Items {
			e := toEvent(item)
			if req.OnlyBlocks && e.BlockKey == "" {
				continue
			}
			events = append(events, e)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list calendar events: %w", err)
	}
	return events, nil
}

func toEvent(item *calendar.Event) Event {
	e := Event{
		ID:          item.Id,
		Summary:     item.Summary,
		Description: item.Description,
		HtmlLink:    item.HtmlLink,
		StartTime:   parseEventTime(item.Start),
		EndTime:     parseEventTime(item.End),
	}
	if item.ExtendedProperties != nil {
		e.BlockKey = item.ExtendedProperties.Private[BlockKeyProperty]
	}
	return e
}

// parseEventTime handles both timed and all-day events.
func parseEventTime(dt *calendar.EventDateTime) time.Time {
	if dt == nil {
		return time.Time{}
	}
	if dt.DateTime != "" {
		if t, err := time.Parse(time.RFC3339, dt.DateTime); err == nil {
			return t
		}
	}
	if dt.Date != "" {
		if t, err := time.Parse(time.DateOnly, dt.Date); err == nil {
			return t
		}
	}
	return time.Time{}
}

func calendarID(id string) string {
	if id == "" {
		return DefaultCalendarID
	}
	return id
}
