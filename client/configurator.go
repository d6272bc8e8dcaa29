package client

import (
	"context"
	"fmt"
	"time"

	"github.com/zllovesuki/IdeapadManager/system/battery"
	"github.com/zllovesuki/IdeapadManager/system/performance"
	"github.com/zllovesuki/IdeapadManager/system/shared"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const requestTimeout = time.Second * 2

var (
	batteryFeatures = []battery.Feature{battery.Conservation, battery.RapidCharge}
	batteryModes    = []battery.Mode{battery.ModeError, battery.ModeSwitch, battery.ModeIgnore}
)

// Configurator is a terminal UI over an Interface
type Configurator struct {
	control Interface

	ctx      context.Context
	cancelFn context.CancelFunc

	app    *tview.Application
	layers *tview.Pages

	confirmationModal *tview.Modal
	confirmYes        func()
	confirmNo         string

	frame             *tview.Frame
	container         *tview.Flex
	containerLeftCol  *tview.Flex
	containerRightCol *tview.Flex

	configEditHolder *tview.Flex
	configView       *tview.TextView
	infoView         *tview.TextView

	batteryEdit     *tview.Form
	performanceEdit *tview.Form

	fnLists     *tview.List
	fnListItems []listItem
}

type listItem struct {
	Main          string
	Secondary     string
	Shortcut      rune
	Callback      func()
	EditPrimitive tview.Primitive
}

// NewConfigurator returns a Configurator controlling c
func NewConfigurator(c Interface) *Configurator {
	return &Configurator{
		control:           c,
		app:               tview.NewApplication(),
		layers:            tview.NewPages(),
		confirmationModal: tview.NewModal(),
		container:         tview.NewFlex(),
		containerLeftCol:  tview.NewFlex(),
		containerRightCol: tview.NewFlex(),
		configEditHolder:  tview.NewFlex(),
		configView:        tview.NewTextView(),
		infoView:          tview.NewTextView(),
		batteryEdit:       tview.NewForm(),
		performanceEdit:   tview.NewForm(),
		fnLists:           tview.NewList(),
	}
}

func (i *Configurator) request() (context.Context, context.CancelFunc) {
	return context.WithTimeout(i.ctx, requestTimeout)
}

func (i *Configurator) setup() {
	i.layers.
		AddPage("container", i.container, true, true).
		AddPage("confirmation", i.confirmationModal, true, false)

	i.setupFnList()
	i.setupModals()
	i.setupForms()
	i.setupStyles()
	i.keyBindings()

	i.containerLeftCol.SetDirection(tview.FlexRow).
		AddItem(i.fnLists, 0, 8, true).
		AddItem(i.infoView, 0, 2, false)

	i.containerRightCol.SetDirection(tview.FlexRow).
		AddItem(i.configView, 0, 2, false).
		AddItem(i.configEditHolder, 0, 4, false)

	i.container.
		AddItem(i.containerLeftCol, 0, 3, true).
		AddItem(i.containerRightCol, 0, 7, false)

	i.frame = tview.NewFrame(i.layers)

	i.updateInfoView()
	i.clearMessage()

	i.app.SetRoot(i.frame, true)
}

func (i *Configurator) setupModals() {
	i.confirmationModal.SetText("Are you sure?").
		AddButtons([]string{"Yes", "No"}).
		SetBackgroundColor(tcell.Color104).
		SetDoneFunc(func(index int, label string) {
			switch label {
			case "Yes":
				i.confirmYes()
			case "No":
				i.layers.SwitchToPage(i.confirmNo)
			}
		})
}

func (i *Configurator) setupFnList() {
	i.fnListItems = []listItem{
		{
			Main:          "Battery",
			Secondary:     "Get/Set conservation and rapid charge",
			Shortcut:      'b',
			Callback:      i.selectBattery,
			EditPrimitive: i.batteryEdit,
		},
		{
			Main:          "System Performance",
			Secondary:     "Get/Set system performance mode",
			Shortcut:      'p',
			Callback:      i.selectPerformance,
			EditPrimitive: i.performanceEdit,
		},
		{
			Main:      "Exit",
			Secondary: "Exit the Configurator",
			Shortcut:  'q',
			Callback: func() {
				i.confirmNo = "container"
				i.confirmYes = i.cancelFn
				i.layers.SwitchToPage("confirmation")
			},
		},
	}
	for index := range i.fnListItems {
		item := i.fnListItems[index]
		i.fnLists.AddItem(item.Main, item.Secondary, item.Shortcut, item.Callback)
	}
}

func (i *Configurator) clearConfigEdit() {
	i.configEditHolder.Clear()
	i.app.SetFocus(i.configView)
}

func optionNames(n int, name func(int) string) []string {
	names := make([]string, 0, n)
	for index := 0; index < n; index++ {
		names = append(names, name(index))
	}
	return names
}

func (i *Configurator) setupForms() {
	features := optionNames(len(batteryFeatures), func(index int) string { return batteryFeatures[index].String() })
	modes := optionNames(len(batteryModes), func(index int) string { return batteryModes[index].String() })
	perfModes := optionNames(len(performance.Modes), func(index int) string { return performance.Modes[index].String() })

	i.batteryEdit.
		AddDropDown("Feature ", features, 0, nil).
		AddDropDown("Action ", []string{"enable", "disable"}, 0, nil).
		AddDropDown("If the other feature is on ", modes, 0, nil).
		AddButton("Cancel", func() {
			i.clearConfigEdit()
			i.showEditTooltip()
		}).
		AddButton("Save", func() {
			feature, _ := i.batteryEdit.GetFormItem(0).(*tview.DropDown).GetCurrentOption()
			action, _ := i.batteryEdit.GetFormItem(1).(*tview.DropDown).GetCurrentOption()
			mode, _ := i.batteryEdit.GetFormItem(2).(*tview.DropDown).GetCurrentOption()
			if feature < 0 || action < 0 || mode < 0 {
				i.showMessage("Select an option for every field", tcell.ColorRed)
				return
			}

			ctx, cancel := i.request()
			defer cancel()

			var err error
			if action == 0 {
				err = i.control.Enable(ctx, batteryFeatures[feature], batteryModes[mode])
			} else {
				err = i.control.Disable(ctx, batteryFeatures[feature])
			}
			if err != nil {
				i.showMessage(err.Error(), tcell.ColorRed)
				return
			}

			i.showMessage("Battery settings updated!", tcell.ColorGreen)
			i.clearConfigEdit()
			i.selectBattery()
		}).
		SetButtonBackgroundColor(tcell.Color104).
		SetFieldBackgroundColor(tcell.Color104)

	i.performanceEdit.
		AddDropDown("Mode ", perfModes, 0, nil).
		AddButton("Cancel", func() {
			i.clearConfigEdit()
			i.showEditTooltip()
		}).
		AddButton("Next", func() {
			ctx, cancel := i.request()
			defer cancel()

			mode, err := i.control.NextPerformance(ctx, 1)
			if err != nil {
				i.showMessage(err.Error(), tcell.ColorRed)
				return
			}
			i.showMessage(fmt.Sprintf("System performance mode changed to %s", mode), tcell.ColorGreen)
			i.clearConfigEdit()
			i.selectPerformance()
		}).
		AddButton("Save", func() {
			index, _ := i.performanceEdit.GetFormItem(0).(*tview.DropDown).GetCurrentOption()
			if index < 0 {
				i.showMessage("Select a mode", tcell.ColorRed)
				return
			}

			ctx, cancel := i.request()
			defer cancel()

			if err := i.control.SetPerformance(ctx, performance.Modes[index]); err != nil {
				i.showMessage(err.Error(), tcell.ColorRed)
				return
			}
			i.showMessage("System performance mode updated!", tcell.ColorGreen)
			i.clearConfigEdit()
			i.selectPerformance()
		}).
		SetButtonBackgroundColor(tcell.Color104).
		SetFieldBackgroundColor(tcell.Color104)
}

func (i *Configurator) keyBindings() {
	// Right key on function list will select the item
	i.fnLists.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyRight {
			item := i.fnListItems[i.fnLists.GetCurrentItem()]
			item.Callback()
			return nil
		}
		return event
	})

	// Left key on configView will go back to function list
	i.configView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyLeft || event.Key() == tcell.KeyEsc {
			i.clearMessage()
			i.app.SetFocus(i.fnLists)
			return nil
		}
		if event.Key() == tcell.KeyRune && event.Rune() == 'e' {
			i.configEditHolder.Clear()
			editPrim := i.fnListItems[i.fnLists.GetCurrentItem()].EditPrimitive

			if editPrim != nil {
				i.clearMessage()
				i.configEditHolder.AddItem(editPrim, 0, 1, true)
				i.app.SetFocus(editPrim)
			}
		}
		return event
	})
}

func (i *Configurator) setupStyles() {
	i.fnLists.Box.SetBorder(true).SetTitle(" Functions ")
	i.fnLists.SetSecondaryTextColor(tcell.ColorGray)
	i.configView.Box.SetBorder(true).SetBorderAttributes(tcell.AttrNone).SetTitle(" Current Settings ")
	i.infoView.Box.SetBorder(true).SetTitle(" Information ")
}

func (i *Configurator) updateInfoView() {
	mode := "direct (acpi_call)"
	if _, ok := i.control.(*Remote); ok {
		mode = fmt.Sprintf("daemon (%s)", shared.GRPCAddress)
	}
	i.infoView.SetText(fmt.Sprintf("Connected to: %s\nStatus page: http://%s/status", mode, shared.WebAddress))
}

func (i *Configurator) header() *tview.Frame {
	return i.frame.Clear().AddText(shared.AppName+" Configurator", true, tview.AlignCenter, tcell.ColorWhite)
}

func (i *Configurator) showEditTooltip() {
	i.header().AddText("Press (E) to edit", false, tview.AlignLeft, tcell.ColorWhite)
}

func (i *Configurator) clearMessage() {
	i.header().AddText("", false, tview.AlignLeft, tcell.ColorWhite)
}

func (i *Configurator) showMessage(msg string, color tcell.Color) {
	i.header().AddText(msg, false, tview.AlignLeft, color)
	go func() {
		time.Sleep(time.Millisecond * 2500)
		i.app.QueueUpdateDraw(i.clearMessage)
	}()
}

func (i *Configurator) selectBattery() {
	ctx, cancel := i.request()
	defer cancel()

	s, err := i.control.BatteryStatus(ctx)
	if err != nil {
		i.showMessage(err.Error(), tcell.ColorRed)
		return
	}

	i.configView.SetText(fmt.Sprintf("%s: %s\n%s: %s\n",
		battery.Conservation, onOff(s.Conservation),
		battery.RapidCharge, onOff(s.RapidCharge),
	))
	i.showEditTooltip()
	i.app.SetFocus(i.configView)
}

func (i *Configurator) selectPerformance() {
	ctx, cancel := i.request()
	defer cancel()

	mode, err := i.control.Performance(ctx)
	if err != nil {
		i.showMessage(err.Error(), tcell.ColorRed)
		return
	}

	i.configView.SetText(fmt.Sprintf("System performance mode: %s\n", mode))
	i.performanceEdit.GetFormItem(0).(*tview.DropDown).SetCurrentOption(int(mode))
	i.showEditTooltip()
	i.app.SetFocus(i.configView)
}

// Serve runs the UI until the user exits or haltCtx is done
func (i *Configurator) Serve(haltCtx context.Context) error {
	i.ctx, i.cancelFn = context.WithCancel(haltCtx)
	defer i.cancelFn()

	i.setup()

	errCh := make(chan error, 1)
	go func() {
		errCh <- i.app.Run()
		i.cancelFn()
	}()

	<-i.ctx.Done()
	i.app.Stop()
	return <-errCh
}
