package jsontime

import "google.golang.org/protobuf/types/known/timestamppb"

// Timestamp returns i as a protobuf well-known Timestamp.
func (i Instant) Timestamp() *timestamppb.Timestamp {
	return &timestamppb.Timestamp{Seconds: i.sec, Nanos: i.nsec}
}

// InstantFromTimestamp returns the instant of ts. Nil or out-of-range
// timestamps are rejected.
func InstantFromTimestamp(ts *timestamppb.Timestamp) (Instant, error) {
	if err := ts.CheckValid(); err != nil {
		return Instant{}, err
	}
	return Instant{sec: ts.GetSeconds(), nsec: ts.GetNanos()}, nil
}
