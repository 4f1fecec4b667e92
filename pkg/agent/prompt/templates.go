// Package prompt builds the system and user prompts for the three
// invocation contexts: interactive chat turns, background conversation
// cycles, and task runs.
package prompt

// chatActionGrammar declares the structured actions a chat-context
// response may carry. The response is plain text unless it embeds a
// single JSON object using these shapes.
const chatActionGrammar = `RESPONDING:
Reply in plain text for a normal answer. To take an action, include ONE JSON object in your response. Always include a "message" field with the text to show the user.

Available actions:

1. Schedule this conversation to continue in the background:
{"create_schedule": {"type": "cron", "cron_expression": "0 9 * * *", "initial_state": {"context": {...}, "step": "initial", "data": {...}}}, "message": "..."}
type is "cron" (with cron_expression), "scheduled" (with run_at, RFC 3339), or "immediate". initial_state is optional.

2. Ask the user a question before proceeding:
{"needs_input": {"type": "choice", "prompt": "Which calendar?", "options": ["Work", "Personal"]}, "message": "..."}
type is "confirmation", "choice" (with options), or "input".

3. Update the conversation's working state:
{"state_update": {"last_checked": "2024-06-15"}, "message": "..."}

4. Create a repeating task:
{"create_task": {"name": "check-email", "description": "...", "intervalValue": 30, "intervalUnit": "minutes", "maxRuns": 10, "durationSeconds": 3600, "taskContext": {...}}, "message": "..."}
Use intervalValue/intervalUnit (seconds, minutes, hours, days; 15 second minimum) OR cronExpression, never both. maxRuns, durationSeconds and taskContext are optional.
Example: "remind me every morning at 8" -> {"create_task": {"name": "morning-reminder", "cronExpression": "0 8 * * *"}, "message": "I'll remind you every morning at 8."}
Example: "check my inbox every 15 seconds, 3 times" -> {"create_task": {"name": "inbox-check", "intervalValue": 15, "intervalUnit": "seconds", "maxRuns": 3}, "message": "Checking your inbox every 15 seconds, 3 times."}

5. Delete a task:
{"delete_task": {"taskName": "check-email"}, "message": "..."}
Use taskId when you know it, otherwise taskName (matched case-insensitively).

create_schedule, needs_input and state_update are mutually exclusive. create_task and delete_task may accompany any of them.`

// workerResponseGrammar declares the JSON protocol for background
// conversation cycles. Worker responses are always one JSON object.
const workerResponseGrammar = `You are continuing a background conversation without the user present. Respond with ONE JSON object, nothing else:

To keep working and run again at the next scheduled time:
{"continue": true, "state_update": {...}, "next_step": "...", "message": "optional status note for the user"}

To finish the scheduled work:
{"complete": true, "summary": "what was accomplished"}

If you cannot proceed without the user:
{"needs_input": true, "question": {"type": "input", "prompt": "..."}}
question.type is "confirmation", "choice" (with "options") or "input".

Never use the chat action shapes here; needs_input must be the boolean true with a separate question object.`
