package timezone

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

type Status string

const (
	StatusSuccess  Status = "SUCCESS"
	StatusNotFound Status = "NOT_FOUND"
	StatusError    Status = "ERROR"
)

const (
	MessageSuccess         = "Time retrieved successfully"
	MessageEmptyLocation   = "Location must not be empty"
	MessageNotFound        = "Location not found"
	MessageProcessingError = "Error processing request: "
	MessageMissingParam    = "Parameter 'location' is required"
)

// Response is the result of a time lookup. Nil fields encode as JSON null.
type Response struct {
	Location    *string   `json:"location"`
	Timezone    *string   `json:"timezone"`
	CurrentTime *Snapshot `json:"currentTime"`
	UTCOffset   *string   `json:"utcOffset"`
	Status      Status    `json:"status"`
	Message     string    `json:"message"`
}

func (r Response) Success() bool { return r.Status == StatusSuccess }

// ErrorResponse is returned when the request itself is invalid.
func ErrorResponse(message string) Response {
	return Response{Status: StatusError, Message: message}
}

type Service struct {
	resolver *Resolver
	logger   *zap.Logger
}

func NewService(resolver *Resolver, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{resolver: resolver, logger: logger}
}

func (s *Service) Resolver() *Resolver { return s.resolver }

// CurrentTime resolves location and reads the clock in its zone. It never
// fails: every error is folded into a NOT_FOUND response.
func (s *Service) CurrentTime(location string) Response {
	s.logger.Debug("timezone lookup", zap.String("location", location))

	zone, err := s.resolver.Resolve(location)
	switch {
	case errors.Is(err, ErrEmptyLocation):
		s.logger.Warn("timezone lookup with empty location")
		return notFound(location, MessageEmptyLocation)
	case err != nil:
		s.logger.Warn("location not found", zap.String("location", location))
		return notFound(location, MessageNotFound)
	}

	resp := s.Refresh(location, zone)
	if resp.Success() {
		s.logger.Info("timezone resolved",
			zap.String("location", location),
			zap.String("timezone", zone),
			zap.Stringer("currentTime", resp.CurrentTime),
		)
	}
	return resp
}

// Refresh reads the clock for an already resolved zone. Clock faults are
// logged and folded into a NOT_FOUND response.
func (s *Service) Refresh(location, zone string) Response {
	snapshot, offset, err := s.read(zone)
	if err != nil {
		s.logger.Error("timezone lookup failed", zap.String("location", location), zap.String("timezone", zone), zap.Error(err))
		return notFound(location, MessageProcessingError+err.Error())
	}
	return Response{
		Location:    &location,
		Timezone:    &zone,
		CurrentTime: &snapshot,
		UTCOffset:   &offset,
		Status:      StatusSuccess,
		Message:     MessageSuccess,
	}
}

func (s *Service) read(zone string) (snapshot Snapshot, offset string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%v", rec)
		}
	}()

	snapshot, err = s.resolver.Snapshot(zone)
	if err != nil {
		return Snapshot{}, "", err
	}
	offset, err = s.resolver.UTCOffset(zone)
	if err != nil {
		return Snapshot{}, "", err
	}
	return snapshot, offset, nil
}

func notFound(location, message string) Response {
	return Response{Location: &location, Status: StatusNotFound, Message: message}
}
