package handlers

import (
	"net/http"
	"strconv"

	"github.com/Conceptual-Machines/sightread-api/internal/theory"
	"github.com/gin-gonic/gin"
)

type ScalePitch struct {
	Name theory.PitchName `json:"name"`
	MIDI int              `json:"midi"`
	Stem string           `json:"stem"`
}

type ScaleResponse struct {
	Voice   theory.Voice     `json:"voice"`
	Rest    theory.PitchName `json:"rest_display_pitch"`
	Pitches []ScalePitch     `json:"pitches"`
}

type WindowResponse struct {
	Voice     theory.Voice       `json:"voice"`
	Center    theory.PitchName   `json:"center"`
	Above     int                `json:"above"`
	Below     int                `json:"below"`
	FullScale bool               `json:"full_scale"` // center not on the scale
	Pitches   []theory.PitchName `json:"pitches"`
}

// GetScale lists the fixed pitch table for a voice
func GetScale(c *gin.Context) {
	voice, err := theory.ParseVoice(c.Param("voice"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	scale := theory.ScaleFor(voice)
	pitches := make([]ScalePitch, 0, scale.Len())
	for _, p := range scale.Pitches() {
		midi := theory.MustMIDI(p)
		pitches = append(pitches, ScalePitch{
			Name: p,
			MIDI: midi,
			Stem: theory.StemForMIDI(voice, midi).String(),
		})
	}

	c.JSON(http.StatusOK, ScaleResponse{
		Voice:   voice,
		Rest:    theory.RestDisplayPitch(voice),
		Pitches: pitches,
	})
}

// GetWindow previews the pitch window a range selection resolves to
func GetWindow(c *gin.Context) {
	voice, err := theory.ParseVoice(c.Param("voice"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	above, err := nonNegativeQuery(c, "above")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "above must be a non-negative integer"})
		return
	}
	below, err := nonNegativeQuery(c, "below")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "below must be a non-negative integer"})
		return
	}

	center := theory.PitchName(c.Query("center"))
	window := theory.ResolveWindow(voice, center, above, below)

	c.JSON(http.StatusOK, WindowResponse{
		Voice:     voice,
		Center:    center,
		Above:     above,
		Below:     below,
		FullScale: theory.ScaleFor(voice).IndexOf(center) < 0,
		Pitches:   window.Pitches(),
	})
}

func nonNegativeQuery(c *gin.Context, key string) (int, error) {
	n, err := strconv.Atoi(c.DefaultQuery(key, "0"))
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, strconv.ErrRange
	}
	return n, nil
}
