// internal/parser/fit_parser.go
package parser

import (
	"bytes"
	"fmt"
	"math"
	"os"

	"github.com/tormoder/fit"

	"github.com/sstent/fittrack-go/internal/packet"
)

const secPerHour = 3600.0

// AthleteProfile carries the body measurements a FIT activity file does
// not record but the calorie formulas need.
type AthleteProfile struct {
	WeightKg float64
	HeightCm float64
}

// FITParser imports Garmin FIT activities as sensor packets.
type FITParser struct {
	profile AthleteProfile
}

func NewFITParser(profile AthleteProfile) *FITParser {
	return &FITParser{profile: profile}
}

func (p *FITParser) ParseFile(filename string) ([]packet.Packet, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	packets, err := p.ParseData(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return packets, nil
}

func (p *FITParser) ParseData(data []byte) ([]packet.Packet, error) {
	fitFile, err := fit.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode FIT file: %w", err)
	}

	activity, err := fitFile.Activity()
	if err != nil {
		return nil, fmt.Errorf("failed to get activity from FIT: %w", err)
	}

	if len(activity.Sessions) == 0 {
		return nil, fmt.Errorf("no sessions found in FIT file")
	}

	var packets []packet.Packet
	for _, session := range activity.Sessions {
		pkt, err := p.sessionPacket(session)
		if err != nil {
			return nil, err
		}
		packets = append(packets, pkt)
	}

	return packets, nil
}

func (p *FITParser) sessionPacket(session *fit.SessionMsg) (packet.Packet, error) {
	// TotalTimerTime and TotalDistance are stored at FIT scale (ms, cm);
	// the scaled getters convert to seconds and meters.
	durationH := session.GetTotalTimerTimeScaled() / secPerHour
	distanceM := session.GetTotalDistanceScaled()

	// Stroke/step count; fall back to an estimate from distance when the
	// device did not record cycles.
	action := int(session.TotalCycles)
	if action <= 0 {
		action = int(math.Round(distanceM / 0.65))
	}

	switch session.Sport {
	case fit.SportRunning:
		return packet.Packet{
			Type: packet.CodeRunning,
			Data: []any{action, durationH, p.profile.WeightKg},
		}, nil
	case fit.SportWalking:
		return packet.Packet{
			Type: packet.CodeWalking,
			Data: []any{action, durationH, p.profile.WeightKg, p.profile.HeightCm},
		}, nil
	case fit.SportSwimming:
		laps := int(session.NumLaps)
		if laps <= 0 {
			return packet.Packet{}, fmt.Errorf("swim session has no lap data")
		}
		return packet.Packet{
			Type: packet.CodeSwimming,
			Data: []any{action, durationH, p.profile.WeightKg, distanceM / float64(laps), laps},
		}, nil
	default:
		return packet.Packet{}, fmt.Errorf("unsupported FIT sport: %v", session.Sport)
	}
}
