package usecase_test

const threeIssueDoc = `# Backlog

---

## Issue #1: Add login page
**Labels:** ` + "`frontend`, `enhancement`" + `

**Description:**
Build the login page.

**Acceptance Criteria:**
- [ ] Form validates input

---

## Issue #2: Fix token refresh
**Labels:** backend, bug

**Description:**
Refresh tokens expire too early.

---

## Issue #3: Document the API
**Labels:** documentation, backend

**Files to Modify:**
- docs/api.md
`
