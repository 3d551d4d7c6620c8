// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AdminUsersColumns holds the columns for the "admin_users" table.
	AdminUsersColumns = []*schema.Column{
		{Name: "user_id", Type: field.TypeString, Unique: true},
		{Name: "username", Type: field.TypeString, Unique: true},
		{Name: "email", Type: field.TypeString},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "is_superuser", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// AdminUsersTable holds the schema information for the "admin_users" table.
	AdminUsersTable = &schema.Table{
		Name:       "admin_users",
		Columns:    AdminUsersColumns,
		PrimaryKey: []*schema.Column{AdminUsersColumns[0]},
	}
	// CandidatesColumns holds the columns for the "candidates" table.
	CandidatesColumns = []*schema.Column{
		{Name: "candidate_id", Type: field.TypeString, Unique: true},
		{Name: "full_name", Type: field.TypeString},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "phone", Type: field.TypeString, Nullable: true},
		{Name: "resume_text", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "resume_path", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// CandidatesTable holds the schema information for the "candidates" table.
	CandidatesTable = &schema.Table{
		Name:       "candidates",
		Columns:    CandidatesColumns,
		PrimaryKey: []*schema.Column{CandidatesColumns[0]},
	}
	// CodeSubmissionsColumns holds the columns for the "code_submissions" table.
	CodeSubmissionsColumns = []*schema.Column{
		{Name: "submission_id", Type: field.TypeString, Unique: true},
		{Name: "question_id", Type: field.TypeString},
		{Name: "language", Type: field.TypeEnum, Enums: []string{"python", "javascript", "java", "c_sharp", "php", "ruby", "sql"}},
		{Name: "source_code", Type: field.TypeString, Size: 2147483647},
		{Name: "passed_all_tests", Type: field.TypeBool, Default: false},
		{Name: "output_log", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
	}
	// CodeSubmissionsTable holds the schema information for the "code_submissions" table.
	CodeSubmissionsTable = &schema.Table{
		Name:       "code_submissions",
		Columns:    CodeSubmissionsColumns,
		PrimaryKey: []*schema.Column{CodeSubmissionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "code_submissions_sessions_code_submissions",
				Columns:    []*schema.Column{CodeSubmissionsColumns[7]},
				RefColumns: []*schema.Column{SessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "codesubmission_session_id",
				Unique:  false,
				Columns: []*schema.Column{CodeSubmissionsColumns[7]},
			},
			{
				Name:    "codesubmission_question_id",
				Unique:  false,
				Columns: []*schema.Column{CodeSubmissionsColumns[1]},
			},
		},
	}
	// CompaniesColumns holds the columns for the "companies" table.
	CompaniesColumns = []*schema.Column{
		{Name: "company_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// CompaniesTable holds the schema information for the "companies" table.
	CompaniesTable = &schema.Table{
		Name:       "companies",
		Columns:    CompaniesColumns,
		PrimaryKey: []*schema.Column{CompaniesColumns[0]},
	}
	// EvaluationResultsColumns holds the columns for the "evaluation_results" table.
	EvaluationResultsColumns = []*schema.Column{
		{Name: "result_id", Type: field.TypeString, Unique: true},
		{Name: "resume_score", Type: field.TypeFloat64},
		{Name: "answers_score", Type: field.TypeFloat64},
		{Name: "overall_score", Type: field.TypeFloat64},
		{Name: "technical_score", Type: field.TypeFloat64, Nullable: true},
		{Name: "behavioral_score", Type: field.TypeFloat64, Nullable: true},
		{Name: "coding_score", Type: field.TypeFloat64, Nullable: true},
		{Name: "resume_feedback", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "answers_feedback", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "recommendation", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "hire_recommendation", Type: field.TypeBool, Nullable: true},
		{Name: "confidence_level", Type: field.TypeFloat64, Default: 0},
		{Name: "warning_summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "metrics", Type: field.TypeJSON, Nullable: true},
		{Name: "is_fallback", Type: field.TypeBool, Default: false},
		{Name: "model_used", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "interview_id", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString, Unique: true},
	}
	// EvaluationResultsTable holds the schema information for the "evaluation_results" table.
	EvaluationResultsTable = &schema.Table{
		Name:       "evaluation_results",
		Columns:    EvaluationResultsColumns,
		PrimaryKey: []*schema.Column{EvaluationResultsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "evaluation_results_interviews_evaluation_results",
				Columns:    []*schema.Column{EvaluationResultsColumns[17]},
				RefColumns: []*schema.Column{InterviewsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "evaluation_results_sessions_result",
				Columns:    []*schema.Column{EvaluationResultsColumns[18]},
				RefColumns: []*schema.Column{SessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "evaluationresult_session_id",
				Unique:  true,
				Columns: []*schema.Column{EvaluationResultsColumns[18]},
			},
			{
				Name:    "evaluationresult_interview_id",
				Unique:  false,
				Columns: []*schema.Column{EvaluationResultsColumns[17]},
			},
		},
	}
	// InterviewsColumns holds the columns for the "interviews" table.
	InterviewsColumns = []*schema.Column{
		{Name: "interview_id", Type: field.TypeString, Unique: true},
		{Name: "round_label", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"new", "pending_scheduling", "scheduled", "in_progress", "completed", "rejected", "on_hold"}, Default: "new"},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "ended_at", Type: field.TypeTime, Nullable: true},
		{Name: "link_expires_at", Type: field.TypeTime, Nullable: true},
		{Name: "email_sent", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "candidate_id", Type: field.TypeString},
		{Name: "job_id", Type: field.TypeString},
	}
	// InterviewsTable holds the schema information for the "interviews" table.
	InterviewsTable = &schema.Table{
		Name:       "interviews",
		Columns:    InterviewsColumns,
		PrimaryKey: []*schema.Column{InterviewsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "interviews_candidates_interviews",
				Columns:    []*schema.Column{InterviewsColumns[9]},
				RefColumns: []*schema.Column{CandidatesColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "interviews_jobs_interviews",
				Columns:    []*schema.Column{InterviewsColumns[10]},
				RefColumns: []*schema.Column{JobsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "interview_status",
				Unique:  false,
				Columns: []*schema.Column{InterviewsColumns[2]},
			},
			{
				Name:    "interview_candidate_id_started_at",
				Unique:  false,
				Columns: []*schema.Column{InterviewsColumns[9], InterviewsColumns[3]},
			},
			{
				Name:    "interview_email_sent_status",
				Unique:  false,
				Columns: []*schema.Column{InterviewsColumns[6], InterviewsColumns[2]},
			},
		},
	}
	// JobsColumns holds the columns for the "jobs" table.
	JobsColumns = []*schema.Column{
		{Name: "job_id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString},
		{Name: "company_name", Type: field.TypeString, Nullable: true},
		{Name: "domain", Type: field.TypeString, Nullable: true},
		{Name: "description", Type: field.TypeString, Size: 2147483647},
		{Name: "tech_stack", Type: field.TypeJSON, Nullable: true},
		{Name: "coding_language", Type: field.TypeEnum, Nullable: true, Enums: []string{"python", "javascript", "java", "c_sharp", "php", "ruby", "sql"}},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "company_id", Type: field.TypeString, Nullable: true},
	}
	// JobsTable holds the schema information for the "jobs" table.
	JobsTable = &schema.Table{
		Name:       "jobs",
		Columns:    JobsColumns,
		PrimaryKey: []*schema.Column{JobsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "jobs_companies_jobs",
				Columns:    []*schema.Column{JobsColumns[10]},
				RefColumns: []*schema.Column{CompaniesColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "job_company_id",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[10]},
			},
			{
				Name:    "job_is_active",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[7]},
			},
		},
	}
	// QuestionsColumns holds the columns for the "questions" table.
	QuestionsColumns = []*schema.Column{
		{Name: "question_id", Type: field.TypeString, Unique: true},
		{Name: "question_order", Type: field.TypeInt},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"ice_breaker", "technical", "behavioral", "coding", "system_design", "general"}},
		{Name: "level", Type: field.TypeEnum, Enums: []string{"main", "follow_up"}, Default: "main"},
		{Name: "text", Type: field.TypeString, Size: 2147483647},
		{Name: "coding_language", Type: field.TypeEnum, Nullable: true, Enums: []string{"python", "javascript", "java", "c_sharp", "php", "ruby", "sql"}},
		{Name: "audio_path", Type: field.TypeString, Nullable: true},
		{Name: "tts_degraded", Type: field.TypeBool, Default: false},
		{Name: "generated_fallback", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "parent_id", Type: field.TypeString, Nullable: true},
		{Name: "session_id", Type: field.TypeString},
	}
	// QuestionsTable holds the schema information for the "questions" table.
	QuestionsTable = &schema.Table{
		Name:       "questions",
		Columns:    QuestionsColumns,
		PrimaryKey: []*schema.Column{QuestionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "questions_questions_follow_ups",
				Columns:    []*schema.Column{QuestionsColumns[10]},
				RefColumns: []*schema.Column{QuestionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "questions_sessions_questions",
				Columns:    []*schema.Column{QuestionsColumns[11]},
				RefColumns: []*schema.Column{SessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "question_session_id_question_order",
				Unique:  false,
				Columns: []*schema.Column{QuestionsColumns[11], QuestionsColumns[1]},
			},
			{
				Name:    "question_session_id_level",
				Unique:  false,
				Columns: []*schema.Column{QuestionsColumns[11], QuestionsColumns[3]},
			},
		},
	}
	// ResponsesColumns holds the columns for the "responses" table.
	ResponsesColumns = []*schema.Column{
		{Name: "response_id", Type: field.TypeString, Unique: true},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"text", "audio", "code"}, Default: "text"},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "audio_path", Type: field.TypeString, Nullable: true},
		{Name: "duration_seconds", Type: field.TypeFloat64, Default: 0},
		{Name: "filler_count", Type: field.TypeInt, Nullable: true},
		{Name: "words_per_minute", Type: field.TypeFloat64, Nullable: true},
		{Name: "sentiment", Type: field.TypeFloat64, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "question_id", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString},
	}
	// ResponsesTable holds the schema information for the "responses" table.
	ResponsesTable = &schema.Table{
		Name:       "responses",
		Columns:    ResponsesColumns,
		PrimaryKey: []*schema.Column{ResponsesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "responses_questions_responses",
				Columns:    []*schema.Column{ResponsesColumns[9]},
				RefColumns: []*schema.Column{QuestionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "responses_sessions_responses",
				Columns:    []*schema.Column{ResponsesColumns[10]},
				RefColumns: []*schema.Column{SessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "response_question_id",
				Unique:  true,
				Columns: []*schema.Column{ResponsesColumns[9]},
			},
			{
				Name:    "response_session_id",
				Unique:  false,
				Columns: []*schema.Column{ResponsesColumns[10]},
			},
		},
	}
	// SchedulesColumns holds the columns for the "schedules" table.
	SchedulesColumns = []*schema.Column{
		{Name: "schedule_id", Type: field.TypeString, Unique: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "confirmed", "cancelled"}, Default: "pending"},
		{Name: "booking_note", Type: field.TypeString, Nullable: true},
		{Name: "booked_at", Type: field.TypeTime},
		{Name: "cancelled_at", Type: field.TypeTime, Nullable: true},
		{Name: "interview_id", Type: field.TypeString},
		{Name: "slot_id", Type: field.TypeString},
	}
	// SchedulesTable holds the schema information for the "schedules" table.
	SchedulesTable = &schema.Table{
		Name:       "schedules",
		Columns:    SchedulesColumns,
		PrimaryKey: []*schema.Column{SchedulesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "schedules_interviews_schedules",
				Columns:    []*schema.Column{SchedulesColumns[5]},
				RefColumns: []*schema.Column{InterviewsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "schedules_slots_schedules",
				Columns:    []*schema.Column{SchedulesColumns[6]},
				RefColumns: []*schema.Column{SlotsColumns[0]},
				OnDelete:   schema.Restrict,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "schedule_slot_id_status",
				Unique:  false,
				Columns: []*schema.Column{SchedulesColumns[6], SchedulesColumns[1]},
			},
			{
				Name:    "schedule_interview_id",
				Unique:  false,
				Columns: []*schema.Column{SchedulesColumns[5]},
			},
		},
	}
	// SessionsColumns holds the columns for the "sessions" table.
	SessionsColumns = []*schema.Column{
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "session_key", Type: field.TypeString, Unique: true},
		{Name: "candidate_name", Type: field.TypeString},
		{Name: "candidate_email", Type: field.TypeString},
		{Name: "job_description", Type: field.TypeString, Size: 2147483647},
		{Name: "resume_text", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "language", Type: field.TypeString, Default: "en"},
		{Name: "accent", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"scheduled", "active", "paused", "completed", "expired", "error"}, Default: "scheduled"},
		{Name: "current_question_index", Type: field.TypeInt, Default: 0},
		{Name: "total_questions", Type: field.TypeInt, Default: 0},
		{Name: "session_started_at", Type: field.TypeTime, Nullable: true},
		{Name: "session_ended_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_interaction_at", Type: field.TypeTime, Nullable: true},
		{Name: "id_verification_status", Type: field.TypeEnum, Enums: []string{"pending", "verified", "failed"}, Default: "pending"},
		{Name: "id_details", Type: field.TypeString, Nullable: true},
		{Name: "model_config", Type: field.TypeJSON, Nullable: true},
		{Name: "is_evaluated", Type: field.TypeBool, Default: false},
		{Name: "evaluation_attempts", Type: field.TypeInt, Default: 0},
		{Name: "claimed_by", Type: field.TypeString, Nullable: true},
		{Name: "video_path", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "interview_id", Type: field.TypeString, Unique: true},
	}
	// SessionsTable holds the schema information for the "sessions" table.
	SessionsTable = &schema.Table{
		Name:       "sessions",
		Columns:    SessionsColumns,
		PrimaryKey: []*schema.Column{SessionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "sessions_interviews_session",
				Columns:    []*schema.Column{SessionsColumns[24]},
				RefColumns: []*schema.Column{InterviewsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "session_status",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[8]},
			},
			{
				Name:    "session_status_is_evaluated",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[8], SessionsColumns[17]},
			},
			{
				Name:    "session_status_last_interaction_at",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[8], SessionsColumns[13]},
			},
		},
	}
	// SlotsColumns holds the columns for the "slots" table.
	SlotsColumns = []*schema.Column{
		{Name: "slot_id", Type: field.TypeString, Unique: true},
		{Name: "interview_date", Type: field.TypeString},
		{Name: "start_time", Type: field.TypeString},
		{Name: "end_time", Type: field.TypeString},
		{Name: "duration_minutes", Type: field.TypeInt},
		{Name: "max_candidates", Type: field.TypeInt, Default: 1},
		{Name: "current_bookings", Type: field.TypeInt, Default: 0},
		{Name: "cancelled", Type: field.TypeBool, Default: false},
		{Name: "recurrence", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "job_id", Type: field.TypeString},
	}
	// SlotsTable holds the schema information for the "slots" table.
	SlotsTable = &schema.Table{
		Name:       "slots",
		Columns:    SlotsColumns,
		PrimaryKey: []*schema.Column{SlotsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "slots_jobs_slots",
				Columns:    []*schema.Column{SlotsColumns[11]},
				RefColumns: []*schema.Column{JobsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "slot_job_id_interview_date",
				Unique:  false,
				Columns: []*schema.Column{SlotsColumns[11], SlotsColumns[1]},
			},
			{
				Name:    "slot_cancelled",
				Unique:  false,
				Columns: []*schema.Column{SlotsColumns[7]},
			},
		},
	}
	// TestCasesColumns holds the columns for the "test_cases" table.
	TestCasesColumns = []*schema.Column{
		{Name: "test_case_id", Type: field.TypeString, Unique: true},
		{Name: "input", Type: field.TypeString, Size: 2147483647},
		{Name: "expected_output", Type: field.TypeString, Size: 2147483647},
		{Name: "is_hidden", Type: field.TypeBool, Default: false},
		{Name: "ordinal", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "question_id", Type: field.TypeString},
	}
	// TestCasesTable holds the schema information for the "test_cases" table.
	TestCasesTable = &schema.Table{
		Name:       "test_cases",
		Columns:    TestCasesColumns,
		PrimaryKey: []*schema.Column{TestCasesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "test_cases_questions_test_cases",
				Columns:    []*schema.Column{TestCasesColumns[6]},
				RefColumns: []*schema.Column{QuestionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "testcase_question_id_is_hidden_ordinal",
				Unique:  false,
				Columns: []*schema.Column{TestCasesColumns[6], TestCasesColumns[3], TestCasesColumns[4]},
			},
		},
	}
	// WarningLogsColumns holds the columns for the "warning_logs" table.
	WarningLogsColumns = []*schema.Column{
		{Name: "warning_id", Type: field.TypeString, Unique: true},
		{Name: "warning_type", Type: field.TypeEnum, Enums: []string{"no_person", "multiple_people", "phone_detected", "low_concentration", "tab_switched", "excessive_noise", "multiple_speakers", "proctor_degraded"}},
		{Name: "message", Type: field.TypeString, Nullable: true},
		{Name: "evidence_path", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
	}
	// WarningLogsTable holds the schema information for the "warning_logs" table.
	WarningLogsTable = &schema.Table{
		Name:       "warning_logs",
		Columns:    WarningLogsColumns,
		PrimaryKey: []*schema.Column{WarningLogsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "warning_logs_sessions_warning_logs",
				Columns:    []*schema.Column{WarningLogsColumns[5]},
				RefColumns: []*schema.Column{SessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "warninglog_session_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{WarningLogsColumns[5], WarningLogsColumns[4]},
			},
			{
				Name:    "warninglog_warning_type",
				Unique:  false,
				Columns: []*schema.Column{WarningLogsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AdminUsersTable,
		CandidatesTable,
		CodeSubmissionsTable,
		CompaniesTable,
		EvaluationResultsTable,
		InterviewsTable,
		JobsTable,
		QuestionsTable,
		ResponsesTable,
		SchedulesTable,
		SessionsTable,
		SlotsTable,
		TestCasesTable,
		WarningLogsTable,
	}
)

func init() {
	CodeSubmissionsTable.ForeignKeys[0].RefTable = SessionsTable
	EvaluationResultsTable.ForeignKeys[0].RefTable = InterviewsTable
	EvaluationResultsTable.ForeignKeys[1].RefTable = SessionsTable
	InterviewsTable.ForeignKeys[0].RefTable = CandidatesTable
	InterviewsTable.ForeignKeys[1].RefTable = JobsTable
	JobsTable.ForeignKeys[0].RefTable = CompaniesTable
	QuestionsTable.ForeignKeys[0].RefTable = QuestionsTable
	QuestionsTable.ForeignKeys[1].RefTable = SessionsTable
	ResponsesTable.ForeignKeys[0].RefTable = QuestionsTable
	ResponsesTable.ForeignKeys[1].RefTable = SessionsTable
	SchedulesTable.ForeignKeys[0].RefTable = InterviewsTable
	SchedulesTable.ForeignKeys[1].RefTable = SlotsTable
	SessionsTable.ForeignKeys[0].RefTable = InterviewsTable
	SlotsTable.ForeignKeys[0].RefTable = JobsTable
	TestCasesTable.ForeignKeys[0].RefTable = QuestionsTable
	WarningLogsTable.ForeignKeys[0].RefTable = SessionsTable
}
