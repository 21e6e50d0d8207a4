package classify

// Instruction is the fixed instruction template sent to the external
// classifier ahead of the note text. The classifier's behavior depends on
// this text verbatim; changing it changes the output contract.
const Instruction = `
You are a strict JSON generator for a personal second-brain sorter.

Task: classify the user text into one of: people, projects, ideas, admin.
Then extract the relevant fields for that category.

Return ONLY valid JSON. No markdown. No commentary.

Schema:
{
  "category": "people|projects|ideas|admin|unknown",
  "confidence": 0.0-1.0,
  "fields": { ...category-specific fields... },
  "title": "short human-friendly name"
}

Category field rules:

people.fields:
- name: string (required; if missing -> category "unknown" with low confidence)
- context: string (optional)
- follow_up: string (optional; specific next follow-up)
- last_contact: string (optional; ISO date YYYY-MM-DD if clearly present)

projects.fields:
- name: string (required)
- status: active|waiting|blocked|someday|done (default active)
- next_action: string (optional but preferred; must be concrete if possible)
- notes: string (optional)

ideas.fields:
- title: string (required)
- one_liner: string (optional; <= 25 words)
- notes: string (optional)

admin.fields:
- task: string (required)
- due_date: string (optional; ISO date YYYY-MM-DD if clear)
- status: open|done (default open)

If uncertain, set category="unknown" and confidence <= 0.50.

User text:
`

// Prompt builds the full classifier input for a raw note.
func Prompt(raw string) string {
	return Instruction + raw
}
