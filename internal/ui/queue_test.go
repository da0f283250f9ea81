package ui

import "testing"

func TestBuildQueue(t *testing.T) {
	st := directoryStore(t)
	items := buildQueue(st)
	if len(items) != 3 {
		t.Fatalf("items = %d, want 3", len(items))
	}
	for i, it := range items {
		if it.Token != i+1 {
			t.Errorf("item %d token = %d, want %d", i, it.Token, i+1)
		}
	}
	if items[0].Status != statusInProgress {
		t.Errorf("first item status = %q, want %q", items[0].Status, statusInProgress)
	}
	if items[1].Status != statusWaiting || items[2].Status != statusWaiting {
		t.Error("later items should start waiting")
	}
	if items[0].Patient != "Max" || items[0].Owner != "John Doe" {
		t.Errorf("item 0 = %s (%s)", items[0].Patient, items[0].Owner)
	}
}

func TestAdvanceQueue(t *testing.T) {
	items := []queueItem{
		{Token: 1, Status: statusInProgress, Minutes: 15},
		{Token: 2, Status: statusWaiting},
		{Token: 3, Status: statusCompleted, Minutes: 40},
	}
	advanceQueue(items)

	// Only waiting patients accrue time; being called in freezes the
	// wait where it stood.
	if items[0].Minutes != 15 {
		t.Errorf("in-progress minutes = %d, want 15 (frozen)", items[0].Minutes)
	}
	if items[1].Minutes != 1 {
		t.Errorf("waiting minutes = %d, want 1", items[1].Minutes)
	}
	if items[2].Minutes != 40 {
		t.Errorf("completed minutes = %d, want 40 (unchanged)", items[2].Minutes)
	}

	advanceQueue(items)
	if items[1].Minutes != 2 {
		t.Errorf("waiting minutes after second tick = %d, want 2", items[1].Minutes)
	}
	if items[0].Minutes != 15 {
		t.Errorf("in-progress minutes after second tick = %d, want 15", items[0].Minutes)
	}
}

func TestCompleteNext(t *testing.T) {
	items := []queueItem{
		{Token: 1, Status: statusInProgress},
		{Token: 2, Status: statusWaiting},
		{Token: 3, Status: statusWaiting},
	}

	completeNext(items)
	if items[0].Status != statusCompleted || items[1].Status != statusInProgress {
		t.Fatalf("after first call: %q %q", items[0].Status, items[1].Status)
	}
	if got := nowServing(items); got != 2 {
		t.Errorf("nowServing = %d, want 2", got)
	}

	completeNext(items)
	completeNext(items)
	if got := nowServing(items); got != 0 {
		t.Errorf("nowServing after draining = %d, want 0", got)
	}
	for _, it := range items {
		if it.Status != statusCompleted {
			t.Errorf("token %d status = %q, want completed", it.Token, it.Status)
		}
	}
}

func TestNowServingEmpty(t *testing.T) {
	if got := nowServing(nil); got != 0 {
		t.Errorf("nowServing(nil) = %d, want 0", got)
	}
}
