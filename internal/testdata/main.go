package testdata

// Chart is a small two-side chart in the nested document shape. It has a tempo
// change to 150 bpm on the third section and one malformed row per side.
const Chart = `{
  "song": {
    "song": "Tutorial",
    "bpm": 100,
    "speed": 1.2,
    "needsVoices": true,
    "notes": [
      {
        "lengthInSteps": 16,
        "mustHitSection": false,
        "sectionNotes": [
          [0, 0, 0],
          [600, 1, 0],
          [1200, 2, 300],
          [1800, 7, 0],
          [1800, "up", 0]
        ]
      },
      {
        "lengthInSteps": 16,
        "mustHitSection": true,
        "sectionNotes": [
          [2400, 0, 0],
          [3000, 3, 450],
          [3000, 5, 0],
          [3600, 2, 0],
          [4200, -1, 0]
        ]
      },
      {
        "lengthInSteps": 16,
        "mustHitSection": true,
        "changeBPM": true,
        "bpm": 150,
        "sectionNotes": [
          [5200, 1, 0],
          [4800, 0, 0],
          [5600, 2, 0]
        ]
      }
    ]
  }
}`

// FlatChart is the older flat document shape with no tempo or speed fields.
const FlatChart = `{
  "notes": [
    {"mustHitSection": true, "sectionNotes": [[1000, 0, 0], [1500, 1, 0], [2000, 2, 500]]}
  ]
}`

func GetChart() []byte {
	return []byte(Chart)
}
