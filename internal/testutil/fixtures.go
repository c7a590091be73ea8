package testutil

// SampleContentYAML is a small but complete content document with two
// rotating sections.
var SampleContentYAML = `header:
  brand: Harbor Group
  nav:
    - label: Projects
      href: "#projects"
hero:
  headline: Building the waterfront
  tagline: Development and construction under one roof.
team:
  title: Leadership
  members:
    - name: Ana Ruiz
      role: Managing Director
projects:
  title: Recent projects
  items:
    - name: Pier 9 Lofts
      location: Eastport
      year: 2025
      status: completed
clients:
  title: Trusted by
  interval_ms: 3000
  items:
    - name: Northwind Bank
      summary: Headquarters fit-out.
    - name: Coastal Transit
      summary: Depot and maintenance yard.
    - name: Meridian Health
      summary: Outpatient clinics.
solutions:
  title: What we do
  items:
    - name: Development
      company: Harbor Development
      summary: Site acquisition through approval.
      body: |
        ## Development

        We take sites from acquisition to approved scheme.
    - name: Construction
      company: Harbor Build
      summary: Design-build delivery.
      body: |
        ## Construction

        General contracting with in-house estimating.
contact:
  title: Talk to us
  email: hello@harbor.example
footer:
  copyright: "© 2026 Harbor Group"
`

// SingleItemContentYAML has one client and no solutions.
var SingleItemContentYAML = `header:
  brand: Solo
clients:
  items:
    - name: Only Client
`

// InvalidContentYAML fails validation: no brand and an unnamed item.
var InvalidContentYAML = `clients:
  interval_ms: -1
  items:
    - summary: nameless
`
