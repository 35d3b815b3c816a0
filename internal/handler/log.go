package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"reflect"
	"time"

	"github.com/gorilla/schema"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/securecheck/internal/domain"
)

// LogEntryRequest is the body of POST /api/logs and POST /logs/new.
// The json tags serve API clients; the schema tags serve the HTML form.
type LogEntryRequest struct {
	StopDate         openapi_types.Date `json:"stop_date" schema:"stop_date"`
	StopTime         string             `json:"stop_time,omitempty" schema:"stop_time"`
	CountyName       string             `json:"county_name" schema:"county_name"`
	DriverGender     string             `json:"driver_gender" schema:"driver_gender"`
	DriverAge        int                `json:"driver_age" schema:"driver_age"`
	DriverRace       string             `json:"driver_race" schema:"driver_race"`
	SearchConducted  int                `json:"search_conducted" schema:"search_conducted"`
	SearchType       string             `json:"search_type" schema:"search_type"`
	DrugsRelatedStop int                `json:"drugs_related_stop" schema:"drugs_related_stop"`
	StopDuration     string             `json:"stop_duration" schema:"stop_duration"`
	VehicleNumber    string             `json:"vehicle_number" schema:"vehicle_number"`
}

// StopRecordResponse is the JSON form of a domain.StopRecord.
type StopRecordResponse struct {
	StopDate         *openapi_types.Date `json:"stop_date,omitempty"`
	StopTime         *string             `json:"stop_time,omitempty"`
	CountyName       *string             `json:"county_name,omitempty"`
	DriverGender     *string             `json:"driver_gender,omitempty"`
	DriverAge        *int                `json:"driver_age,omitempty"`
	DriverRace       *string             `json:"driver_race,omitempty"`
	SearchConducted  int                 `json:"search_conducted"`
	SearchType       *string             `json:"search_type,omitempty"`
	DrugsRelatedStop int                 `json:"drugs_related_stop"`
	StopOutcome      *string             `json:"stop_outcome,omitempty"`
	StopDuration     *string             `json:"stop_duration,omitempty"`
	VehicleNumber    *string             `json:"vehicle_number,omitempty"`
}

// LogAckResponse is the body of a successful log submission.
type LogAckResponse struct {
	ID         openapi_types.UUID `json:"id"`
	ReceivedAt time.Time          `json:"received_at"`
	Persisted  bool               `json:"persisted"`
	Message    string             `json:"message"`
	Record     StopRecordResponse `json:"record"`
}

const ackMessage = "Police log has been submitted. It was validated but not saved."

// formDecoder decodes url-encoded form posts into LogEntryRequest.
var formDecoder = newFormDecoder()

func newFormDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	d.ZeroEmpty(true)
	// An empty date decodes to the zero Date so that the service reports
	// it as missing.
	d.RegisterConverter(openapi_types.Date{}, func(s string) reflect.Value {
		if s == "" {
			return reflect.ValueOf(openapi_types.Date{})
		}
		t, err := time.Parse(openapi_types.DateFormat, s)
		if err != nil {
			return reflect.Value{}
		}
		return reflect.ValueOf(openapi_types.Date{Time: t})
	})
	return d
}

// errUnsupportedMedia marks a request body that is neither JSON nor a form.
var errUnsupportedMedia = errors.New("unsupported content type")

// CreateLog handles POST /api/logs.
// Accepts application/json or application/x-www-form-urlencoded and answers
// 202 Accepted: the entry is acknowledged, not stored.
func (s *Server) CreateLog(w http.ResponseWriter, r *http.Request) {
	req, err := decodeLogEntry(r)
	if err != nil {
		writeDecodeError(w, err)
		return
	}

	ack, err := s.logs.Submit(r.Context(), requestToLogEntry(req))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusAccepted, ackToResponse(ack))
}

// decodeLogEntry reads the request body according to its Content-Type.
func decodeLogEntry(r *http.Request) (LogEntryRequest, error) {
	var req LogEntryRequest

	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return req, fmt.Errorf("%w: %q", errUnsupportedMedia, r.Header.Get("Content-Type"))
	}

	switch mediaType {
	case "application/json":
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return req, err
		}
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return req, err
		}
		if err := formDecoder.Decode(&req, r.PostForm); err != nil {
			return req, err
		}
	default:
		return req, fmt.Errorf("%w: %q", errUnsupportedMedia, mediaType)
	}
	return req, nil
}

// writeDecodeError reports a body that could not be decoded: 413 when the
// size limit tripped, 415 for an unknown media type, otherwise 400.
func writeDecodeError(w http.ResponseWriter, err error) {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		writeJSON(w, http.StatusRequestEntityTooLarge, requestBody("request body too large"))
	case errors.Is(err, errUnsupportedMedia):
		writeJSON(w, http.StatusUnsupportedMediaType, requestBody(err.Error()))
	default:
		writeJSON(w, http.StatusBadRequest, requestBody(fmt.Sprintf("malformed request body: %v", err)))
	}
}

func requestToLogEntry(req LogEntryRequest) domain.LogEntry {
	return domain.LogEntry{
		StopDate:         req.StopDate.Time,
		StopTime:         req.StopTime,
		CountyName:       req.CountyName,
		DriverGender:     req.DriverGender,
		DriverAge:        req.DriverAge,
		DriverRace:       req.DriverRace,
		SearchConducted:  req.SearchConducted,
		SearchType:       req.SearchType,
		DrugsRelatedStop: req.DrugsRelatedStop,
		StopDuration:     req.StopDuration,
		VehicleNumber:    req.VehicleNumber,
	}
}

func ackToResponse(ack domain.SubmittedLog) LogAckResponse {
	return LogAckResponse{
		ID:         openapi_types.UUID(ack.ID),
		ReceivedAt: ack.ReceivedAt,
		Persisted:  ack.Persisted,
		Message:    ackMessage,
		Record:     recordToResponse(ack.Record),
	}
}

// recordToResponse converts a domain.StopRecord to its JSON shape.
// Missing values become nil pointers so they are omitted from the response
// rather than sent as empty strings.
func recordToResponse(r domain.StopRecord) StopRecordResponse {
	out := StopRecordResponse{
		StopTime:         nilIfEmpty(r.StopTime),
		CountyName:       nilIfEmpty(r.CountyName),
		DriverGender:     nilIfEmpty(r.DriverGender.String()),
		DriverAge:        r.DriverAge,
		DriverRace:       nilIfEmpty(r.DriverRace),
		SearchConducted:  int(r.SearchConducted),
		SearchType:       nilIfEmpty(r.SearchType),
		DrugsRelatedStop: int(r.DrugsRelatedStop),
		StopOutcome:      nilIfEmpty(r.StopOutcome),
		StopDuration:     nilIfEmpty(r.StopDuration.String()),
		VehicleNumber:    nilIfEmpty(r.VehicleNumber),
	}
	if !r.StopDate.IsZero() {
		out.StopDate = &openapi_types.Date{Time: r.StopDate}
	}
	return out
}

// nilIfEmpty converts an empty string to a nil pointer.
func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
