package models

import "time"

type Analytics struct {
	PageViews      map[string]int `json:"pageViews"`
	TotalViews     int            `json:"totalViews"`
	UniqueVisitors int            `json:"uniqueVisitors"`
	LastUpdated    time.Time      `json:"lastUpdated"`
}

func (a *Analytics) IncPageView(page string, now time.Time) {
	if a.PageViews == nil {
		a.PageViews = make(map[string]int)
	}
	a.PageViews[page]++
	a.TotalViews++
	a.LastUpdated = now
}

func (a *Analytics) IncUniqueVisitor(now time.Time) {
	a.UniqueVisitors++
	a.LastUpdated = now
}
