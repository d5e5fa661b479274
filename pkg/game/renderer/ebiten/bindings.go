package ebiten

import (
	"starmap/pkg/game/starmap"
	"starmap/pkg/game/state"
)

// layerButtons pairs the toggle buttons with the layers they switch
var layerButtons = []struct {
	id    starmap.ButtonID
	layer state.Layer
}{
	{starmap.BtnRadars, state.LayerRadars},
	{starmap.BtnFleets, state.LayerFleets},
	{starmap.BtnStars, state.LayerStars},
	{starmap.BtnGrids, state.LayerGrids},
}

// bindGame connects the view's buttons to the game state
func (e *EbitenRenderer) bindGame() {
	v, g := e.view, e.game

	v.OnClick(starmap.BtnColonyPrev, func() {
		g.Colonies.Prev()
		e.syncLists()
	})
	v.OnClick(starmap.BtnColonyNext, func() {
		g.Colonies.Next()
		e.syncLists()
	})
	v.OnClick(starmap.BtnEquipmentPrev, func() {
		g.Equipment.Prev()
		e.syncLists()
	})
	v.OnClick(starmap.BtnEquipmentNext, func() {
		g.Equipment.Next()
		e.syncLists()
	})
	v.OnClick(starmap.BtnColony, func() {
		if c := g.Colonies.Current(); c != "" {
			e.logMessage("Opening colony %s", c)
		}
	})
	v.OnClick(starmap.BtnEquipment, func() {
		if eq := g.Equipment.Current(); eq != "" {
			e.logMessage("Inspecting %s", eq)
		}
	})
	v.OnClick(starmap.BtnInfo, func() {
		e.logMessage("%d colonies, %d equipment items", len(g.Colonies.Items), len(g.Equipment.Items))
	})
	v.OnClick(starmap.BtnBridge, func() {
		g.ShipSelected = !g.ShipSelected
		v.SetShipControls(g.ShipSelected)
		v.SetDisabled(starmap.BtnColonize, !g.ShipSelected)
		if g.ShipSelected {
			e.logMessage("Ship selected")
		} else {
			e.logMessage("Ship released")
		}
	})
	v.OnClick(starmap.BtnColonize, func() {
		e.logMessage("Colonize ordered")
	})
	v.OnClick(starmap.BtnName, func() {
		e.logMessage("%s", nameModeLabel(v.NameMode()))
	})

	for _, lb := range layerButtons {
		v.SetToggled(lb.id, g.LayerOn(lb.layer))
		v.OnClick(lb.id, func() {
			v.SetToggled(lb.id, g.ToggleLayer(lb.layer))
		})
	}

	v.OnClick(starmap.BtnMove, func() { e.logMessage("Move ordered") })
	v.OnClick(starmap.BtnAttack, func() { e.logMessage("Attack ordered") })
	v.OnClick(starmap.BtnStop, func() { e.logMessage("Stop ordered") })

	for _, id := range []starmap.ButtonID{starmap.BtnSatellite, starmap.BtnSpySat1, starmap.BtnSpySat2, starmap.BtnHubble2} {
		v.OnClick(id, func() { e.logMessage("Launching %s", buttonLabel(id)) })
	}

	v.SetShipControls(g.ShipSelected)
	v.SetDisabled(starmap.BtnColonize, !g.ShipSelected)
	e.syncLists()
}

// syncLists copies the selections into the panel lists and disables the
// arrows at the ends
func (e *EbitenRenderer) syncLists() {
	v, g := e.view, e.game
	v.SetColonies(g.Colonies.Items, g.Colonies.Index)
	v.SetEquipment(g.Equipment.Items, g.Equipment.Index)
	v.SetDisabled(starmap.BtnColonyPrev, !g.Colonies.HasPrev())
	v.SetDisabled(starmap.BtnColonyNext, !g.Colonies.HasNext())
	v.SetDisabled(starmap.BtnEquipmentPrev, !g.Equipment.HasPrev())
	v.SetDisabled(starmap.BtnEquipmentNext, !g.Equipment.HasNext())
}
