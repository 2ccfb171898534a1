package alarm

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	domain "github.com/oshokin/alarm-countdown/internal/domain/alarm"
	"github.com/oshokin/alarm-countdown/internal/engine"
	"github.com/oshokin/alarm-countdown/internal/logger"
	pb "github.com/oshokin/alarm-countdown/internal/pb/v1"
)

// Service abstracts the engine operations the transport layer depends on.
type Service interface {
	Add(ctx context.Context, draft *domain.Draft) (*domain.Alarm, error)
	Stop(ctx context.Context, id string) (*domain.Alarm, error)
	StopAt(ctx context.Context, position int) (*domain.Alarm, error)
	Remove(ctx context.Context, id string) error
	RemoveAt(ctx context.Context, position int) error
	List() []*domain.Alarm
}

// Server implements the AlarmService gRPC API.
type Server struct {
	pb.UnimplementedAlarmServiceServer

	// service provides the alarm engine operations.
	service Service
}

// NewServer wires the provided service implementation into a gRPC handler.
func NewServer(service Service) *Server {
	return &Server{
		service: service,
	}
}

// AddAlarm schedules a new alarm from the draft fields.
func (s *Server) AddAlarm(ctx context.Context, req *pb.AddAlarmRequest) (*pb.AlarmResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	created, err := s.service.Add(ctx, pb.ToDraft(req))
	if err != nil {
		return nil, toStatus(ctx, err)
	}

	return &pb.AlarmResponse{Alarm: pb.FromAlarm(created)}, nil
}

// StopAlarm silences the target alarm and returns its new state.
// The target is an alarm ID or "#N" for the N-th alarm (1-based).
func (s *Server) StopAlarm(ctx context.Context, req *pb.StopAlarmRequest) (*pb.AlarmResponse, error) {
	target := strings.TrimSpace(req.GetTarget())
	if target == "" {
		return nil, status.Error(codes.InvalidArgument, "alarm id is required")
	}

	position, isPosition, err := parsePosition(target)
	if err != nil {
		return nil, toStatus(ctx, err)
	}

	var stopped *domain.Alarm
	if isPosition {
		stopped, err = s.service.StopAt(ctx, position)
	} else {
		stopped, err = s.service.Stop(ctx, target)
	}

	if err != nil {
		return nil, toStatus(ctx, err)
	}

	return &pb.AlarmResponse{Alarm: pb.FromAlarm(stopped)}, nil
}

// RemoveAlarm stops and deletes the target alarm.
func (s *Server) RemoveAlarm(ctx context.Context, req *pb.RemoveAlarmRequest) (*pb.RemoveAlarmResponse, error) {
	target := strings.TrimSpace(req.GetTarget())
	if target == "" {
		return nil, status.Error(codes.InvalidArgument, "alarm id is required")
	}

	position, isPosition, err := parsePosition(target)
	if err != nil {
		return nil, toStatus(ctx, err)
	}

	if isPosition {
		err = s.service.RemoveAt(ctx, position)
	} else {
		err = s.service.Remove(ctx, target)
	}

	if err != nil {
		return nil, toStatus(ctx, err)
	}

	return new(pb.RemoveAlarmResponse), nil
}

// ListAlarms returns all alarms in order.
func (s *Server) ListAlarms(_ context.Context, _ *pb.ListAlarmsRequest) (*pb.ListAlarmsResponse, error) {
	return &pb.ListAlarmsResponse{Alarms: pb.FromAlarms(s.service.List())}, nil
}

// ListSounds returns the sound catalog.
func (s *Server) ListSounds(_ context.Context, _ *pb.ListSoundsRequest) (*pb.ListSoundsResponse, error) {
	return pb.FromSounds(domain.Sounds()), nil
}

var errBadPosition = errors.New("position must be a positive number after '#'")

// parsePosition converts "#N" (1-based) to a zero-based index.
func parsePosition(target string) (int, bool, error) {
	raw, ok := strings.CutPrefix(target, "#")
	if !ok {
		return 0, false, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, true, errBadPosition
	}

	return n - 1, true, nil
}

// toStatus maps engine and domain errors to gRPC status codes.
func toStatus(ctx context.Context, err error) error {
	var validationErr *domain.ValidationError

	switch {
	case errors.As(err, &validationErr):
		return status.Error(codes.InvalidArgument, validationErr.Error())
	case errors.Is(err, errBadPosition):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, engine.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, engine.ErrClosed):
		return status.Error(codes.Unavailable, err.Error())
	default:
		logger.ErrorKV(ctx, "Alarm request failed", "error", err)

		return status.Error(codes.Internal, "internal error")
	}
}
