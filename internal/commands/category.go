package commands

import (
	"fmt"
	"strings"
)

// Category is the classification of a command's action code.
//
// The zero value is the known category with code 0.
type Category struct {
	code    uint8
	unknown bool
}

// catalog lists the known categories in presentation order. Codes must be unique.
var catalog = []struct {
	code uint8
	name string
}{
	{0x00, "DefaultAction"},
	{0x01, "Stop"},
	{0x02, "Destroy"},
	{0x03, "BuildSquad"},
	{0x04, "InstantBuildSquad"},
	{0x05, "CancelProduction"},
	{0x06, "BuildStructure"},
	{0x07, "Move"},
	{0x08, "Face"},
	{0x09, "BuildEntity"},
	{0x0A, "Upgrade"},
	{0x0B, "CancelUpgrade"},
	{0x0C, "InstantUpgrade"},
	{0x0D, "Ability"},
	{0x0E, "Attack"},
	{0x0F, "Evacuate"},
	{0x10, "RescueCasualty"},
	{0x11, "SetRallyPoint"},
	{0x12, "AttackMove"},
	{0x13, "PlaceCharge"},
	{0x14, "DefuseCharge"},
	{0x15, "DefuseMine"},
	{0x16, "DetonateCharges"},
	{0x17, "Halt"},
	{0x18, "AttackStop"},
	{0x19, "AttackForced"},
	{0x1A, "PatrolWaypoint"},
	{0x1B, "Load"},
	{0x1C, "Unload"},
	{0x1D, "UnloadSquads"},
	{0x1E, "Capture"},
	{0x1F, "Surrender"},
	{0x20, "Retreat"},
	{0x21, "PickUpSlotItem"},
	{0x22, "DropSlotItem"},
	{0x23, "Reinforce"},
	{0x24, "ReinforceUnit"},
	{0x25, "Salvage"},
	{0x26, "Repair"},
	{0x27, "SquadBuildStructure"},
	{0x28, "SquadAbility"},
	{0x29, "SquadUpgrade"},
	{0x2A, "SquadCancelUpgrade"},
	{0x2B, "SquadCombineSquads"},
	{0x2C, "SquadSplitSquad"},
	{0x2D, "SquadGarrison"},
	{0x2E, "SquadUngarrison"},
	{0x2F, "SquadSetStance"},
	{0x30, "SquadToggleCamouflage"},
	{0x31, "SquadMergeSquads"},
	{0x32, "SquadRecrew"},
	{0x33, "SquadCrewWeapon"},
	{0x34, "SquadLimber"},
	{0x35, "SquadUnlimber"},
	{0x36, "SquadFaceAndHold"},
	{0x37, "SquadReverseMove"},
	{0x38, "SquadDriveIntoTransport"},
	{0x39, "SquadExitTransport"},
	{0x3A, "SquadDeployAbility"},
	{0x3B, "SquadPickUpResources"},
	{0x3C, "PlayerBuildSquad"},
	{0x3D, "PlayerCancelProduction"},
	{0x3E, "PlayerUpgrade"},
	{0x3F, "PlayerAbility"},
	{0x40, "PlayerCallIn"},
	{0x41, "PlayerSelectBattlegroup"},
	{0x42, "PlayerSelectBattlegroupBranch"},
	{0x43, "PlayerBattlegroupAbility"},
	{0x44, "PlayerSetResourceRates"},
	{0x45, "PlayerShareResources"},
	{0x46, "PlayerCheatRevealAll"},
	{0x47, "PlayerAIPlayer"},
	{0x48, "PlayerSurrender"},
	{0x49, "PlayerPause"},
	{0x4A, "PlayerUnpause"},
	{0x4B, "PlayerPing"},
	{0x4C, "PlayerSetControlGroup"},
	{0x4D, "PlayerSelectionChanged"},
	{0x4E, "PlayerCameraMove"},
	{0x4F, "PlayerChat"},
}

var (
	byCode = make(map[uint8]int, len(catalog))
	byName = make(map[string]int, len(catalog))
)

func init() {
	for i, entry := range catalog {
		if _, dup := byCode[entry.code]; dup {
			panic(fmt.Sprintf("commands: duplicate action code 0x%02X", entry.code))
		}
		byCode[entry.code] = i
		byName[strings.ToLower(entry.name)] = i
	}
}

// Categories returns the known categories in presentation order. The fallback category is never included.
func Categories() []Category {
	out := make([]Category, len(catalog))
	for i, entry := range catalog {
		out[i] = Category{code: entry.code}
	}
	return out
}

// Classify returns the category for an action code. Codes missing from the table map to the fallback category carrying code.
func Classify(code uint8) Category {
	if _, ok := byCode[code]; ok {
		return Category{code: code}
	}
	return Category{code: code, unknown: true}
}

// Lookup finds a known category by name, ignoring case.
func Lookup(name string) (Category, bool) {
	i, ok := byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Category{}, false
	}
	return Category{code: catalog[i].code}, true
}

// Code returns the action code of the category. For the fallback this is the code it was classified from.
func (c Category) Code() uint8 { return c.code }

// Known reports whether the category is in the table.
func (c Category) Known() bool { return !c.unknown }

// Name returns the display name.
func (c Category) Name() string {
	if c.unknown {
		return fmt.Sprintf("Unknown(0x%02X)", c.code)
	}
	return catalog[byCode[c.code]].name
}

func (c Category) String() string { return c.Name() }
