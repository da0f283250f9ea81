package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Nisaljde/VetPulzNext/internal/form"
	"github.com/Nisaljde/VetPulzNext/internal/ident"
	"github.com/Nisaljde/VetPulzNext/internal/petdata"
	"github.com/Nisaljde/VetPulzNext/internal/store"
)

// Field indices in the registration form. Client fields come first,
// then fieldsPerPet fields for each patient section.
const (
	fieldTitle = iota
	fieldName
	fieldEmail
	fieldPhone
	fieldSecondary
	fieldAddress
	fieldNIC
	fieldLanguage
	fieldSMS
	clientFieldCount
)

const (
	petFieldUnknown = iota
	petFieldName
	petFieldSpecies
	petFieldBreed
	petFieldGender
	petFieldYears
	petFieldMonths
	petFieldWeeks
	petFieldDays
	petFieldDOB
	petFieldAttitude
	fieldsPerPet
)

type petInputs struct {
	name     textinput.Model
	years    textinput.Model
	months   textinput.Model
	weeks    textinput.Model
	days     textinput.Model
	dob      textinput.Model
	attitude textinput.Model
}

// registerState holds the registration form while it is open. Text
// inputs are the source of truth for free-text fields and are copied
// into the controller drafts before validation; select and toggle
// fields write to the drafts directly.
type registerState struct {
	ctrl  *form.Controller
	txt   []textinput.Model // client text fields, indexed by field constant
	pets  []petInputs
	focus int
}

func newInput(placeholder string, limit, width int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Width = width
	ti.Prompt = ""
	return ti
}

func newRegisterState(ctrl *form.Controller) *registerState {
	rs := &registerState{ctrl: ctrl}

	rs.txt = make([]textinput.Model, clientFieldCount)
	rs.txt[fieldName] = newInput("Full name", 64, 32)
	rs.txt[fieldEmail] = newInput("name@example.com", 64, 32)
	rs.txt[fieldPhone] = newInput("Phone number", 24, 24)
	rs.txt[fieldSecondary] = newInput("Secondary phone (optional)", 24, 24)
	rs.txt[fieldAddress] = newInput("Address", 96, 40)
	rs.txt[fieldNIC] = newInput("NIC number", 24, 24)
	rs.txt[fieldLanguage] = newInput("Preferred language", 24, 24)

	rs.txt[fieldName].SetValue(ctrl.Client.Name)
	rs.txt[fieldEmail].SetValue(ctrl.Client.Email)
	rs.txt[fieldPhone].SetValue(ctrl.Client.Phone)
	rs.txt[fieldSecondary].SetValue(ctrl.Client.SecondaryPhone)
	rs.txt[fieldAddress].SetValue(ctrl.Client.Address)
	rs.txt[fieldNIC].SetValue(ctrl.Client.NIC)
	rs.txt[fieldLanguage].SetValue(ctrl.Client.PreferredLanguage)

	for i := range ctrl.Pets {
		rs.pets = append(rs.pets, newPetInputs(&ctrl.Pets[i]))
	}
	rs.setFocus(fieldName)
	return rs
}

func newPetInputs(d *form.PetDraft) petInputs {
	pi := petInputs{
		name:     newInput("Patient name", 64, 32),
		years:    newInput("0", 3, 4),
		months:   newInput("0", 3, 4),
		weeks:    newInput("0", 3, 4),
		days:     newInput("0", 3, 4),
		dob:      newInput("YYYY-MM-DD", 10, 12),
		attitude: newInput("Temperament notes (optional)", 64, 32),
	}
	pi.name.SetValue(d.Name)
	pi.years.SetValue(d.Years)
	pi.months.SetValue(d.Months)
	pi.weeks.SetValue(d.Weeks)
	pi.days.SetValue(d.Days)
	pi.dob.SetValue(d.DOB)
	pi.attitude.SetValue(d.Attitude)
	return pi
}

func (rs *registerState) fieldCount() int {
	return clientFieldCount + len(rs.pets)*fieldsPerPet
}

// input returns the text input backing a flat field index, or nil for
// select and toggle fields.
func (rs *registerState) input(i int) *textinput.Model {
	if i < clientFieldCount {
		switch i {
		case fieldTitle, fieldSMS:
			return nil
		}
		return &rs.txt[i]
	}
	p := (i - clientFieldCount) / fieldsPerPet
	switch (i - clientFieldCount) % fieldsPerPet {
	case petFieldName:
		return &rs.pets[p].name
	case petFieldYears:
		return &rs.pets[p].years
	case petFieldMonths:
		return &rs.pets[p].months
	case petFieldWeeks:
		return &rs.pets[p].weeks
	case petFieldDays:
		return &rs.pets[p].days
	case petFieldDOB:
		return &rs.pets[p].dob
	case petFieldAttitude:
		return &rs.pets[p].attitude
	}
	return nil
}

func (rs *registerState) setFocus(i int) {
	n := rs.fieldCount()
	if n == 0 {
		return
	}
	rs.focus = ((i % n) + n) % n
	for j := 0; j < n; j++ {
		if ti := rs.input(j); ti != nil {
			if j == rs.focus {
				ti.Focus()
			} else {
				ti.Blur()
			}
		}
	}
}

// syncDrafts copies text input values into the controller drafts.
func (rs *registerState) syncDrafts() {
	c := &rs.ctrl.Client
	c.Name = rs.txt[fieldName].Value()
	c.Email = rs.txt[fieldEmail].Value()
	c.Phone = rs.txt[fieldPhone].Value()
	c.SecondaryPhone = rs.txt[fieldSecondary].Value()
	c.Address = rs.txt[fieldAddress].Value()
	c.NIC = rs.txt[fieldNIC].Value()
	c.PreferredLanguage = rs.txt[fieldLanguage].Value()

	for i := range rs.pets {
		d := &rs.ctrl.Pets[i]
		d.Name = rs.pets[i].name.Value()
		d.Years = rs.pets[i].years.Value()
		d.Months = rs.pets[i].months.Value()
		d.Weeks = rs.pets[i].weeks.Value()
		d.Days = rs.pets[i].days.Value()
		d.DOB = rs.pets[i].dob.Value()
		d.Attitude = rs.pets[i].attitude.Value()
	}
}

// cycle moves a select field through its options, or flips a toggle.
func (rs *registerState) cycle(delta int) {
	i := rs.focus
	if i < clientFieldCount {
		switch i {
		case fieldTitle:
			rs.ctrl.Client.Title = cycleOption(form.Titles, rs.ctrl.Client.Title, delta)
		case fieldSMS:
			rs.ctrl.Client.SMSNotifications = !rs.ctrl.Client.SMSNotifications
		}
		return
	}
	p := (i - clientFieldCount) / fieldsPerPet
	d := &rs.ctrl.Pets[p]
	switch (i - clientFieldCount) % fieldsPerPet {
	case petFieldUnknown:
		d.Unknown = !d.Unknown
	case petFieldSpecies:
		rs.ctrl.SetSpecies(p, cycleOption(petdata.SpeciesNames(), d.Species, delta))
	case petFieldBreed:
		if breeds := petdata.BreedsFor(d.Species); len(breeds) > 0 {
			d.Breed = cycleOption(breeds, d.Breed, delta)
		}
	case petFieldGender:
		d.Gender = cycleOption(form.Genders, d.Gender, delta)
	}
}

func cycleOption(options []string, current string, delta int) string {
	if len(options) == 0 {
		return current
	}
	idx := -1
	for i, o := range options {
		if o == current {
			idx = i
			break
		}
	}
	if idx < 0 {
		// Unset selects start at the first option regardless of
		// direction.
		return options[0]
	}
	n := len(options)
	return options[(idx+delta+n)%n]
}

func (m *Model) openRegisterCreate() {
	m.reg = newRegisterState(form.NewCreate(m.defaultLanguage))
	m.currentView = ViewRegister
}

func (m *Model) openRegisterEdit(c store.Client, p store.Pet) {
	m.reg = newRegisterState(form.NewEdit(c, p))
	m.currentView = ViewRegister
}

func (m *Model) closeRegister() {
	m.reg = nil
	m.currentView = ViewClients
	m.reloadClients()
}

func (m Model) handleRegisterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rs := m.reg
	focused := rs.input(rs.focus)

	switch {
	case keyMatches(msg, m.keys.Cancel):
		m.closeRegister()
		return m, nil
	case keyMatches(msg, m.keys.Submit):
		return m.submitRegister()
	case keyMatches(msg, m.keys.NextField):
		rs.setFocus(rs.focus + 1)
		return m, textinput.Blink
	case keyMatches(msg, m.keys.PrevField):
		rs.setFocus(rs.focus - 1)
		return m, textinput.Blink
	case keyMatches(msg, m.keys.AddPet):
		rs.syncDrafts()
		before := len(rs.ctrl.Pets)
		rs.ctrl.AddPetDraft()
		if len(rs.ctrl.Pets) > before {
			rs.pets = append(rs.pets, newPetInputs(&rs.ctrl.Pets[before]))
			rs.setFocus(clientFieldCount + before*fieldsPerPet + petFieldName)
		}
		return m, textinput.Blink
	case keyMatches(msg, m.keys.RemovePet):
		if rs.focus >= clientFieldCount {
			p := (rs.focus - clientFieldCount) / fieldsPerPet
			before := len(rs.ctrl.Pets)
			rs.ctrl.RemovePetDraft(p)
			if len(rs.ctrl.Pets) < before {
				rs.pets = append(rs.pets[:p], rs.pets[p+1:]...)
				rs.setFocus(fieldName)
			}
		}
		return m, nil
	case keyMatches(msg, m.keys.CycleLeft):
		if focused == nil {
			rs.cycle(-1)
			return m, nil
		}
	case keyMatches(msg, m.keys.CycleRight):
		if focused == nil {
			rs.cycle(1)
			return m, nil
		}
	case keyMatches(msg, m.keys.Toggle):
		if focused == nil {
			rs.cycle(1)
			return m, nil
		}
	}

	if focused != nil {
		var cmd tea.Cmd
		*focused, cmd = focused.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) submitRegister() (tea.Model, tea.Cmd) {
	rs := m.reg
	rs.syncDrafts()
	if problems := rs.ctrl.Validate(); len(problems) > 0 {
		return m.toast("Check the form", problems[0], true)
	}
	result, err := rs.ctrl.Submit(m.store, ident.NewPID)
	if err != nil {
		return m.toast("Error", "The record could not be saved.", true)
	}

	editing := rs.ctrl.Editing()
	m.closeRegister()
	m.queue.items = buildQueue(m.store)
	if editing {
		return m.toast("Record updated", fmt.Sprintf("%s's record was updated.", result.Client.Name), false)
	}
	return m.toast("Client registered",
		fmt.Sprintf("%s registered with %d patient(s).", result.Client.Name, len(result.Pets)), false)
}

func (m Model) renderRegister(height int) string {
	st := m.theme.Styles()
	rs := m.reg
	var b strings.Builder

	mode := "New client registration"
	if rs.ctrl.Editing() {
		mode = "Edit client record"
	}
	b.WriteString("  " + st.AccentText.Bold(true).Render(mode) + "\n\n")

	b.WriteString("  " + st.MutedText.Render("CLIENT") + "\n")
	b.WriteString(m.renderField(fieldTitle, "Title", rs.ctrl.Client.Title))
	b.WriteString(m.renderInput(fieldName, "Name"))
	b.WriteString(m.renderInput(fieldEmail, "Email"))
	b.WriteString(m.renderInput(fieldPhone, "Phone"))
	b.WriteString(m.renderInput(fieldSecondary, "Alt. phone"))
	b.WriteString(m.renderInput(fieldAddress, "Address"))
	b.WriteString(m.renderInput(fieldNIC, "NIC"))
	b.WriteString(m.renderInput(fieldLanguage, "Language"))
	b.WriteString(m.renderField(fieldSMS, "SMS alerts", onOff(rs.ctrl.Client.SMSNotifications)))

	for p := range rs.ctrl.Pets {
		d := rs.ctrl.Pets[p]
		base := clientFieldCount + p*fieldsPerPet
		b.WriteString("\n  " + st.MutedText.Render(fmt.Sprintf("PATIENT %d", p+1)) + "\n")
		b.WriteString(m.renderField(base+petFieldUnknown, "Unknown", onOff(d.Unknown)))
		b.WriteString(m.renderInput(base+petFieldName, "Name"))
		b.WriteString(m.renderField(base+petFieldSpecies, "Species", orDash(d.Species)))
		b.WriteString(m.renderField(base+petFieldBreed, "Breed", orDash(d.Breed)))
		b.WriteString(m.renderField(base+petFieldGender, "Gender", orDash(d.Gender)))
		b.WriteString(m.renderInput(base+petFieldYears, "Age (years)"))
		b.WriteString(m.renderInput(base+petFieldMonths, "Age (months)"))
		b.WriteString(m.renderInput(base+petFieldWeeks, "Age (weeks)"))
		b.WriteString(m.renderInput(base+petFieldDays, "Age (days)"))
		b.WriteString(m.renderInput(base+petFieldDOB, "Date of birth"))
		b.WriteString(m.renderInput(base+petFieldAttitude, "Attitude"))
	}

	return b.String()
}

const formLabelWidth = 16

func (m Model) renderInput(i int, label string) string {
	ti := m.reg.input(i)
	return m.formLine(i, label, ti.View())
}

func (m Model) renderField(i int, label, value string) string {
	st := m.theme.Styles()
	v := st.Text.Render("‹ " + value + " ›")
	if i != m.reg.focus {
		v = st.MutedText.Render(value)
	}
	return m.formLine(i, label, v)
}

func (m Model) formLine(i int, label, value string) string {
	st := m.theme.Styles()
	marker := "  "
	labelStyle := st.MutedText
	if i == m.reg.focus {
		marker = st.AccentText.Render("▸ ")
		labelStyle = st.Text
	}
	return "  " + marker + labelStyle.Render(padRight(label, formLabelWidth)) + value + "\n"
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func orDash(v string) string {
	if v == "" {
		return "—"
	}
	return v
}
