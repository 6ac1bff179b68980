package httpapi

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/triply-travel/itinerary-api/internal/app/itineraries"
	"github.com/triply-travel/itinerary-api/internal/domain"
	"github.com/triply-travel/itinerary-api/internal/ports/out/clock"
	"github.com/triply-travel/itinerary-api/internal/ports/out/idempotency"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 1 << 20

// Server is the HTTP adapter over the itineraries service.
type Server struct {
	Itineraries *itineraries.Service
	Idem        idempotency.Store
	Clock       clock.Clock
}

func NewServer(svc *itineraries.Service, idem idempotency.Store, clk clock.Clock) *Server {
	return &Server{Itineraries: svc, Idem: idem, Clock: clk}
}

func (s *Server) CreateItinerary(w http.ResponseWriter, r *http.Request) {
	var body CreateItineraryRequest
	if !decodeBody(w, r, &body) {
		return
	}
	ctx := r.Context()

	// Idempotency handling:
	// - Replay if same key+route+bodyHash
	// - Reject if same key+route with different bodyHash (409)
	idemKey := strings.TrimSpace(r.Header.Get("Idempotency-Key"))
	var bodyHash string
	if s.Idem != nil && idemKey != "" {
		h, err := hashCreateItineraryBody(body)
		if err != nil {
			writeAppError(w, r, err)
			return
		}
		bodyHash = h
		metaFP := idempotency.Fingerprint{
			Key:    idempotency.Key(idemKey),
			Method: http.MethodPost,
			Route:  "/itineraries",
		}
		if meta, ok, err := s.Idem.Get(ctx, metaFP); err != nil {
			writeAppError(w, r, err)
			return
		} else if ok {
			if string(meta.Body) != bodyHash {
				writeError(w, r, http.StatusConflict, "IDEMPOTENCY_KEY_REUSE", "idempotency key reuse with different payload", nil)
				return
			}
		} else {
			_ = s.Idem.Put(ctx, metaFP, idempotency.Record{
				ContentType: "text/plain",
				Body:        []byte(bodyHash),
				CreatedAt:   s.Clock.Now(),
			})
		}

		respFP := metaFP
		respFP.BodyHash = bodyHash
		if rec, ok, err := s.Idem.Get(ctx, respFP); err != nil {
			writeAppError(w, r, err)
			return
		} else if ok && rec.StatusCode == http.StatusCreated && strings.HasPrefix(rec.ContentType, "application/json") {
			w.Header().Set("Content-Type", rec.ContentType)
			w.Header().Set("Idempotent-Replayed", "true")
			w.WriteHeader(rec.StatusCode)
			_, _ = w.Write(rec.Body)
			return
		}
	}

	it, err := s.Itineraries.GenerateItinerary(ctx, body.toDomain())
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	resp := ItineraryResponse{Itinerary: itineraryFromDomain(it)}

	// Store successful response for replay.
	if bodyHash != "" {
		if b, err := json.Marshal(resp); err == nil {
			_ = s.Idem.Put(ctx, idempotency.Fingerprint{
				Key:      idempotency.Key(idemKey),
				Method:   http.MethodPost,
				Route:    "/itineraries",
				BodyHash: bodyHash,
			}, idempotency.Record{
				StatusCode:  http.StatusCreated,
				ContentType: "application/json",
				Body:        b,
				CreatedAt:   s.Clock.Now(),
			})
		}
	}

	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) ListItineraries(w http.ResponseWriter, r *http.Request) {
	list, err := s.Itineraries.ListItineraries(r.Context())
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	out := make([]ItinerarySummary, 0, len(list))
	for _, sm := range list {
		out = append(out, summaryFromDomain(sm))
	}
	writeJSON(w, http.StatusOK, ListItinerariesResponse{Itineraries: out})
}

func (s *Server) GetItinerary(w http.ResponseWriter, r *http.Request) {
	it, err := s.Itineraries.GetItinerary(r.Context(), itineraryID(r))
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ItineraryResponse{Itinerary: itineraryFromDomain(it)})
}

func (s *Server) RegenerateDay(w http.ResponseWriter, r *http.Request) {
	dayIndex, ok := intParam(w, r, "dayIndex")
	if !ok {
		return
	}
	it, err := s.Itineraries.RegenerateDay(r.Context(), itineraryID(r), dayIndex)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ItineraryResponse{Itinerary: itineraryFromDomain(it)})
}

func (s *Server) SwapActivity(w http.ResponseWriter, r *http.Request) {
	dayIndex, ok := intParam(w, r, "dayIndex")
	if !ok {
		return
	}
	itemIndex, ok := intParam(w, r, "itemIndex")
	if !ok {
		return
	}
	var replacement domain.Activity
	if !decodeBody(w, r, &replacement) {
		return
	}
	it, err := s.Itineraries.SwapActivity(r.Context(), itineraryID(r), dayIndex, itemIndex, replacement)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ItineraryResponse{Itinerary: itineraryFromDomain(it)})
}

func (s *Server) ListAlternatives(w http.ResponseWriter, r *http.Request) {
	dayIndex, ok := intParam(w, r, "dayIndex")
	if !ok {
		return
	}
	itemIndex, ok := intParam(w, r, "itemIndex")
	if !ok {
		return
	}
	count := 0
	if raw := r.URL.Query().Get("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeError(w, r, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "validation failed", map[string]any{"count": "must be a positive integer"})
			return
		}
		count = n
	}
	alts, err := s.Itineraries.AlternativeActivities(r.Context(), itineraryID(r), dayIndex, itemIndex, count)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	if alts == nil {
		alts = []domain.Activity{}
	}
	writeJSON(w, http.StatusOK, AlternativesResponse{Alternatives: alts})
}

func itineraryID(r *http.Request) domain.ItineraryID {
	return domain.ItineraryID(chi.URLParam(r, "itineraryId"))
}

func intParam(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	n, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil {
		writeError(w, r, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "validation failed", map[string]any{name: "must be an integer"})
		return 0, false
	}
	return n, true
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		msg := "invalid JSON body"
		if errors.Is(err, io.EOF) {
			msg = "missing request body"
		}
		writeError(w, r, http.StatusBadRequest, "BAD_REQUEST", msg, nil)
		return false
	}
	return true
}

func hashCreateItineraryBody(b CreateItineraryRequest) (string, error) {
	// Canonicalize fields that have normalization semantics before hashing.
	canon := b
	canon.Destination = domain.NormalizeHumanName(canon.Destination)
	raw, err := json.Marshal(canon)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:]), nil
}
