package model

type ErrorResponse struct {
	Error string `json:"detail"`
}

type NoteResponse struct {
	Name              string   `json:"name"`
	SimpleName        string   `json:"simple_name"`
	PitchClass        int      `json:"pitch_class"`
	OctaveDesignation int      `json:"octave_designation"`
	MidiKey           int      `json:"midi_key"`
	Frequency         float64  `json:"frequency"`
	Enharmonics       []string `json:"enharmonics"`
}

type QualityResponse struct {
	Name         string   `json:"name"`
	Descriptions []string `json:"descriptions"`
	Structure    []string `json:"structure"`
}
