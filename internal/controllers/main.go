package controllers

import (
	"errors"

	"geocalc/internal/expr"
	"geocalc/internal/logger"
	"geocalc/internal/models"
	"geocalc/internal/services"
)

// EventHandler is the set of user actions the view reports.
type EventHandler interface {
	OnDigit(digit string)
	OnOperator(operator string)
	OnEvaluate()
	OnClear()
	OnDelete()
	OnToggleSign()
	OnShapeChange(name string)
	OnComputeArea()
	OnToggleMode()
}

// Renderer is implemented by the view. The controller pushes every visible
// change through it and reads area entries back on compute.
type Renderer interface {
	SetDisplayText(text string)
	SetAreaInputs(layout models.InputLayout)
	SetAreaCaption(caption string)
	InputText(index int) string
	SetAreaPanelVisible(visible bool)
	ResizeWindow(size models.WindowSize)
}

// ApplicationState is a snapshot of everything the controller owns.
type ApplicationState struct {
	Expression  string
	AreaVisible bool
	WindowSize  models.WindowSize
	Shape       models.Shape
	Events      int
	Failures    int
}

// MainController routes view events to the calculator and area services.
// All handlers run on the UI thread.
type MainController struct {
	calculator *services.CalculatorService
	area       *services.AreaService

	display *models.Display
	mode    *models.Mode

	renderer Renderer
	logger   logger.Logger

	events   int
	failures int
}

var _ EventHandler = (*MainController)(nil)

func NewMainController(
	calculator *services.CalculatorService,
	area *services.AreaService,
	display *models.Display,
	log logger.Logger,
) *MainController {
	return &MainController{
		calculator: calculator,
		area:       area,
		display:    display,
		mode:       &models.Mode{},
		logger:     log,
	}
}

// SetRenderer attaches the view and brings it in line with the current state.
func (mc *MainController) SetRenderer(renderer Renderer) {
	mc.renderer = renderer
	if renderer == nil {
		return
	}

	renderer.SetDisplayText(mc.display.Text())
	renderer.SetAreaCaption(models.AreaCaption)
	renderer.SetAreaInputs(mc.area.Shape().Inputs())
	renderer.SetAreaPanelVisible(mc.mode.AreaVisible())
	renderer.ResizeWindow(mc.mode.WindowSize())
}

func (mc *MainController) OnDigit(digit string) {
	mc.appendToken("digit", digit)
}

func (mc *MainController) OnOperator(operator string) {
	mc.appendToken("operator", operator)
}

func (mc *MainController) appendToken(kind, token string) {
	mc.calculator.Append(mc.display, token)
	mc.logEvent("append", map[string]interface{}{
		"kind":  kind,
		"token": token,
	})
	mc.refreshDisplay()
}

func (mc *MainController) OnEvaluate() {
	expression := mc.display.Text()
	if err := mc.calculator.Evaluate(mc.display); err != nil {
		mc.handleError("Calculator", err, map[string]interface{}{
			"expression": expression,
		})
	} else {
		mc.logEvent("evaluate", map[string]interface{}{
			"expression": expression,
			"result":     mc.display.Text(),
		})
	}
	mc.refreshDisplay()
}

func (mc *MainController) OnClear() {
	mc.calculator.Clear(mc.display)
	mc.logEvent("clear", nil)
	mc.refreshDisplay()
}

func (mc *MainController) OnDelete() {
	mc.calculator.DeleteLast(mc.display)
	mc.logEvent("delete", nil)
	mc.refreshDisplay()
}

func (mc *MainController) OnToggleSign() {
	changed := mc.calculator.ToggleSign(mc.display)
	mc.logEvent("toggle_sign", map[string]interface{}{
		"changed": changed,
	})
	mc.refreshDisplay()
}

// OnShapeChange swaps the visible area entries. Entry values are kept.
func (mc *MainController) OnShapeChange(name string) {
	layout := mc.area.SelectShape(name)
	mc.logEvent("shape_change", map[string]interface{}{
		"shape": mc.area.Shape().String(),
	})

	if mc.renderer != nil {
		mc.renderer.SetAreaCaption(models.AreaCaption)
		mc.renderer.SetAreaInputs(layout)
	}
}

func (mc *MainController) OnComputeArea() {
	var inputs [2]string
	if mc.renderer != nil {
		inputs[0] = mc.renderer.InputText(0)
		inputs[1] = mc.renderer.InputText(1)
	}

	if err := mc.area.ComputeArea(mc.display, inputs); err != nil {
		mc.handleError("Area", err, map[string]interface{}{
			"shape": mc.area.Shape().String(),
		})
	} else {
		mc.logEvent("compute_area", map[string]interface{}{
			"shape": mc.area.Shape().String(),
			"area":  mc.display.Text(),
		})
	}
	mc.refreshDisplay()
}

// OnToggleMode shows or hides the area panel and switches window preset.
func (mc *MainController) OnToggleMode() {
	visible := mc.mode.Toggle()
	size := mc.mode.WindowSize()
	mc.logEvent("toggle_mode", map[string]interface{}{
		"area_visible": visible,
		"width":        size.Width,
		"height":       size.Height,
	})

	if mc.renderer != nil {
		mc.renderer.SetAreaPanelVisible(visible)
		mc.renderer.ResizeWindow(size)
	}
}

// State returns a snapshot of the controller.
func (mc *MainController) State() ApplicationState {
	return ApplicationState{
		Expression:  mc.display.Text(),
		AreaVisible: mc.mode.AreaVisible(),
		WindowSize:  mc.mode.WindowSize(),
		Shape:       mc.area.Shape(),
		Events:      mc.events,
		Failures:    mc.failures,
	}
}

// Shutdown logs the session summary.
func (mc *MainController) Shutdown() {
	state := mc.State()
	mc.logger.Info("Controller", "session finished", map[string]interface{}{
		"events":   state.Events,
		"failures": state.Failures,
		"shape":    state.Shape.String(),
	})
}

func (mc *MainController) refreshDisplay() {
	if mc.renderer != nil {
		mc.renderer.SetDisplayText(mc.display.Text())
	}
}

func (mc *MainController) logEvent(event string, fields map[string]interface{}) {
	mc.events++
	if fields == nil {
		fields = make(map[string]interface{})
	}
	fields["event"] = event
	mc.logger.Debug("Controller", "event handled", fields)
}

// handleError records a failed action. The display already holds the message
// the user sees, so failures are logged rather than raised.
func (mc *MainController) handleError(component string, err error, fields map[string]interface{}) {
	mc.events++
	mc.failures++

	var evalErr *expr.EvaluationError
	switch {
	case errors.As(err, &evalErr):
		fields["offset"] = evalErr.Offset
		mc.logger.Debug(component, "evaluation failed", withError(fields, err))
	case errors.Is(err, services.ErrInvalidInput), errors.Is(err, services.ErrNoShape):
		mc.logger.Debug(component, "area not computed", withError(fields, err))
	default:
		mc.logger.Error(component, err, fields)
	}
}

func withError(fields map[string]interface{}, err error) map[string]interface{} {
	fields["error"] = err.Error()
	return fields
}
