package constant

const (
	THROTTLE_FPS  = 30
	REFRESH_RATE  = 60
	WINDOW_WIDTH  = 800
	WINDOW_HEIGHT = 600
	WINDOW_TITLE  = "aqdraw"
	CANVAS_ID     = "aqdrawCanvas"
	DISPLAY_RATIO = 0.9
	PULSE_PERIOD  = 4000 // milliseconds
)
